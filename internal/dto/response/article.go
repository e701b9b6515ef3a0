package response

import (
	"time"

	"article-service/internal/data/entity"
)

type ArticleResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	IsPublished bool           `json:"is_published"`
	UserID      string         `json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Author      *AuthorProfile `json:"user,omitempty"`
}

// AuthorProfile is the owner's public profile embedded in owner-scoped listings.
type AuthorProfile struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

func ArticleToResponse(article *entity.Article) ArticleResponse {
	return ArticleResponse{
		ID:          article.ID.String(),
		Title:       article.Title,
		Content:     article.Content,
		IsPublished: article.IsPublished,
		UserID:      article.UserID.String(),
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}

func ArticlesToResponse(articles []*entity.Article, author *entity.ArticleAuthor) []ArticleResponse {
	var profile *AuthorProfile
	if author != nil {
		profile = &AuthorProfile{
			ID:       author.ID.String(),
			FullName: author.FullName,
			Email:    author.Email,
		}
	}

	responses := make([]ArticleResponse, len(articles))
	for i, article := range articles {
		responses[i] = ArticleToResponse(article)
		responses[i].Author = profile
	}
	return responses
}
