package adaptor

import (
	"errors"
	"net/http"

	"article-service/internal/usecase"
	"article-service/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User    *UserHandler
	Article *ArticleHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:    NewUserHandler(service.Auth, service.Verification, log),
		Article: NewArticleHandler(service.Article, log),
	}
}

// handleServiceError maps expected domain failures to their statuses;
// anything unexpected is logged and becomes an opaque 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrPasswordMismatch),
		errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrPhoneNotFound),
		errors.Is(err, usecase.ErrNoCodeRegistered),
		errors.Is(err, usecase.ErrCodeExpired),
		errors.Is(err, usecase.ErrCodeMismatch):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrEmailTaken):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrNotVerified),
		errors.Is(err, usecase.ErrArticleNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong!")
	}
}
