package repository

import (
	"context"
	"fmt"

	"article-service/internal/data/entity"
	"article-service/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	FindPublished(ctx context.Context) ([]*entity.Article, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Article, *entity.ArticleAuthor, error)
	FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error
}

type articleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewArticleRepository(db database.PgxIface, log *zap.Logger) ArticleRepository {
	return &articleRepository{
		db:  db,
		log: log.With(zap.String("repository", "article")),
	}
}

const articleColumns = `id, title, content, is_published, user_id, created_at, updated_at`

func scanArticleRows(rows pgx.Rows) ([]*entity.Article, error) {
	defer rows.Close()

	var articles []*entity.Article
	for rows.Next() {
		var article entity.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.IsPublished,
			&article.UserID,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate article rows: %w", err)
	}

	return articles, nil
}

func (ar *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	query := `
		INSERT INTO articles (id, title, content, is_published, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := ar.db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.IsPublished,
		article.UserID,
		article.CreatedAt,
		article.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to create article",
			zap.Error(err),
			zap.String("user_id", article.UserID.String()),
		)
		return fmt.Errorf("create article for %s: %w", article.UserID.String(), err)
	}

	return nil
}

// FindPublished returns published articles only, newest first.
func (ar *articleRepository) FindPublished(ctx context.Context) ([]*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE is_published = true
		ORDER BY created_at DESC
	`

	rows, err := ar.db.Query(ctx, query)
	if err != nil {
		ar.log.Error("Failed to list published articles", zap.Error(err))
		return nil, fmt.Errorf("find published articles: %w", err)
	}

	return scanArticleRows(rows)
}

// FindByOwner returns all of the owner's articles plus the owner's public
// profile fields for the listing payload.
func (ar *articleRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Article, *entity.ArticleAuthor, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := ar.db.Query(ctx, query, userID)
	if err != nil {
		ar.log.Error("Failed to list owner articles",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, nil, fmt.Errorf("find articles for %s: %w", userID.String(), err)
	}

	articles, err := scanArticleRows(rows)
	if err != nil {
		return nil, nil, err
	}

	var author entity.ArticleAuthor
	err = ar.db.QueryRow(ctx,
		`SELECT id, fullname, email FROM users WHERE id = $1`, userID,
	).Scan(&author.ID, &author.FullName, &author.Email)
	if err == pgx.ErrNoRows {
		return articles, nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to load article author",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, nil, fmt.Errorf("find article author %s: %w", userID.String(), err)
	}

	return articles, &author, nil
}

// FindByIDAndOwner scopes the lookup by owner, so somebody else's article
// behaves exactly like a missing one.
func (ar *articleRepository) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1 AND user_id = $2
	`

	var article entity.Article
	err := ar.db.QueryRow(ctx, query, id, userID).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.IsPublished,
		&article.UserID,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find article",
			zap.Error(err),
			zap.String("article_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find article %s for %s: %w", id.String(), userID.String(), err)
	}

	return &article, nil
}

func (ar *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	query := `
		UPDATE articles
		SET title = $2, content = $3, is_published = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := ar.db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.IsPublished,
		article.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to update article",
			zap.Error(err),
			zap.String("article_id", article.ID.String()),
		)
		return fmt.Errorf("update article %s: %w", article.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("article %s not found", article.ID.String())
	}

	return nil
}

func (ar *articleRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM articles WHERE id = $1 AND user_id = $2`

	result, err := ar.db.Exec(ctx, query, id, userID)
	if err != nil {
		ar.log.Error("Failed to delete article",
			zap.Error(err),
			zap.String("article_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete article %s for %s: %w", id.String(), userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	ar.log.Info("Article deleted",
		zap.String("article_id", id.String()),
		zap.String("user_id", userID.String()))
	return nil
}
