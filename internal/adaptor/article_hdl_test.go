package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"article-service/internal/dto/request"
	"article-service/internal/dto/response"
	"article-service/internal/usecase"
	"article-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubArticleService struct {
	createResp *response.ArticleResponse
	createErr  error
	listResp   []response.ArticleResponse
	listErr    error
	mineResp   []response.ArticleResponse
	mineErr    error
	updateResp *response.ArticleResponse
	updateErr  error
	deleteErr  error
}

func (s *stubArticleService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateArticleRequest) (*response.ArticleResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubArticleService) ListPublished(ctx context.Context) ([]response.ArticleResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubArticleService) ListMine(ctx context.Context, userID uuid.UUID) ([]response.ArticleResponse, error) {
	return s.mineResp, s.mineErr
}

func (s *stubArticleService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateArticleRequest) (*response.ArticleResponse, error) {
	return s.updateResp, s.updateErr
}

func (s *stubArticleService) Delete(ctx context.Context, userID, articleID uuid.UUID) error {
	return s.deleteErr
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(utils.SetUserContext(req.Context(), uuid.New()))
}

func TestCreateArticleHandler_RequiresAuth(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/articles/new", strings.NewReader(`{"title":"Hi","content":"x"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateArticleHandler_Success(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{
		createResp: &response.ArticleResponse{ID: uuid.NewString(), Title: "Hi"},
	}, zap.NewNop())

	req := authedRequest(http.MethodPost, "/api/articles/new", `{"title":"Hi","content":"body","isPublished":false}`)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["isSuccess"])
}

func TestListPublishedHandler_Public(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{
		listResp: []response.ArticleResponse{{ID: uuid.NewString(), Title: "Hello", IsPublished: true}},
	}, zap.NewNop())

	// No auth context needed
	req := httptest.NewRequest(http.MethodGet, "/api/articles/list", nil)
	rec := httptest.NewRecorder()
	h.ListPublished(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Hello", data[0].(map[string]any)["title"])
}

func TestUpdateArticleHandler_NotFound(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{updateErr: usecase.ErrArticleNotFound}, zap.NewNop())

	body := `{"id":"` + uuid.NewString() + `","title":"Hi","content":"body","isPublished":true}`
	req := authedRequest(http.MethodPut, "/api/articles/update", body)
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteArticleHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"success", nil, http.StatusOK},
		{"not owned", usecase.ErrArticleNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewArticleHandler(&stubArticleService{deleteErr: tt.err}, zap.NewNop())

			articleID := uuid.NewString()
			req := authedRequest(http.MethodDelete, "/api/articles/delete/"+articleID, "")

			// Route through chi so URLParam resolves
			router := chi.NewRouter()
			router.Delete("/api/articles/delete/{id}", h.Delete)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestDeleteArticleHandler_BadID(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{}, zap.NewNop())

	req := authedRequest(http.MethodDelete, "/api/articles/delete/not-a-uuid", "")
	router := chi.NewRouter()
	router.Delete("/api/articles/delete/{id}", h.Delete)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
