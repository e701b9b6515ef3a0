package repository

import (
	"errors"

	"article-service/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrNoRowsAffected signals that a scoped mutation matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
	// ErrCodeNotVerified signals that the locked verification code row was
	// missing or lost its verified flag before the reset committed.
	ErrCodeNotVerified = errors.New("verification code not verified")
)

type Repository struct {
	User             UserRepository
	VerificationCode VerificationCodeRepository
	Article          ArticleRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		VerificationCode: NewVerificationCodeRepository(db, log),
		Article:          NewArticleRepository(db, log),
	}
}
