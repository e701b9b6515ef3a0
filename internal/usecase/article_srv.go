package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"article-service/internal/data/entity"
	"article-service/internal/data/repository"
	"article-service/internal/dto/request"
	"article-service/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ArticleService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateArticleRequest) (*response.ArticleResponse, error)
	ListPublished(ctx context.Context) ([]response.ArticleResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]response.ArticleResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *request.UpdateArticleRequest) (*response.ArticleResponse, error)
	Delete(ctx context.Context, userID, articleID uuid.UUID) error
}

type articleService struct {
	articleRepo repository.ArticleRepository
	log         *zap.Logger
}

func NewArticleService(articleRepo repository.ArticleRepository, log *zap.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		log:         log,
	}
}

func (s *articleService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateArticleRequest) (*response.ArticleResponse, error) {
	now := time.Now()
	article := &entity.Article{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
		UserID:      userID,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		s.log.Error("Failed to create article",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.Info("Article created",
		zap.String("article_id", article.ID.String()),
		zap.String("user_id", userID.String()))

	resp := response.ArticleToResponse(article)
	return &resp, nil
}

func (s *articleService) ListPublished(ctx context.Context) ([]response.ArticleResponse, error) {
	articles, err := s.articleRepo.FindPublished(ctx)
	if err != nil {
		s.log.Error("Failed to list published articles", zap.Error(err))
		return nil, fmt.Errorf("list published articles: %w", err)
	}

	return response.ArticlesToResponse(articles, nil), nil
}

func (s *articleService) ListMine(ctx context.Context, userID uuid.UUID) ([]response.ArticleResponse, error) {
	articles, author, err := s.articleRepo.FindByOwner(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list owner articles",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list owner articles: %w", err)
	}

	return response.ArticlesToResponse(articles, author), nil
}

// Update pre-checks ownership, so an article owned by somebody else is
// indistinguishable from a missing one.
func (s *articleService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateArticleRequest) (*response.ArticleResponse, error) {
	articleID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, ErrArticleNotFound
	}

	article, err := s.articleRepo.FindByIDAndOwner(ctx, articleID, userID)
	if err != nil {
		s.log.Error("Failed to find article for update",
			zap.Error(err), zap.String("article_id", req.ID))
		return nil, fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	article.Title = req.Title
	article.Content = req.Content
	article.IsPublished = req.IsPublished
	article.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, article); err != nil {
		s.log.Error("Failed to update article",
			zap.Error(err), zap.String("article_id", req.ID))
		return nil, fmt.Errorf("update article: %w", err)
	}

	s.log.Info("Article updated",
		zap.String("article_id", article.ID.String()),
		zap.String("user_id", userID.String()))

	resp := response.ArticleToResponse(article)
	return &resp, nil
}

func (s *articleService) Delete(ctx context.Context, userID, articleID uuid.UUID) error {
	err := s.articleRepo.DeleteByIDAndOwner(ctx, articleID, userID)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrArticleNotFound
	}
	if err != nil {
		s.log.Error("Failed to delete article",
			zap.Error(err), zap.String("article_id", articleID.String()))
		return fmt.Errorf("delete article: %w", err)
	}

	return nil
}
