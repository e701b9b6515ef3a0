package adaptor

import (
	"encoding/json"
	"net/http"

	"article-service/internal/dto/request"
	"article-service/internal/usecase"
	"article-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	service usecase.ArticleService
	log     *zap.Logger
}

func NewArticleHandler(service usecase.ArticleService, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{
		service: service,
		log:     log.With(zap.String("handler", "article")),
	}
}

// Create handles POST /api/articles/new (protected)
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	article, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create article")
		return
	}

	utils.ResponseSuccess(w, "New article is successfully created!", article)
}

// ListPublished handles GET /api/articles/list (public)
func (h *ArticleHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.ListPublished(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list articles")
		return
	}

	utils.ResponseSuccess(w, "Success", articles)
}

// ListMine handles GET /api/articles/my-articles (protected)
func (h *ArticleHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	articles, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list my articles")
		return
	}

	utils.ResponseSuccess(w, "Success", articles)
}

// Update handles PUT /api/articles/update (protected)
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	article, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update article")
		return
	}

	utils.ResponseSuccess(w, "The article is successfully updated!", article)
}

// Delete handles DELETE /api/articles/delete/{id} (protected)
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	articleID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "The article is not found!")
		return
	}

	if err := h.service.Delete(r.Context(), userID, articleID); err != nil {
		handleServiceError(w, h.log, err, "delete article")
		return
	}

	utils.ResponseSuccess(w, "The article is deleted successfully!", nil)
}
