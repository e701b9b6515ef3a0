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

type VerificationCodeRepository interface {
	Create(ctx context.Context, code *entity.VerificationCode) error
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.VerificationCode, error)
	MarkVerified(ctx context.Context, codeID uuid.UUID) error
}

type verificationCodeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationCodeRepository(db database.PgxIface, log *zap.Logger) VerificationCodeRepository {
	return &verificationCodeRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification_code")),
	}
}

func (r *verificationCodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	query := `
		INSERT INTO verification_codes (id, user_id, code, expires_at, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		code.ID,
		code.UserID,
		code.Code,
		code.ExpiresAt,
		code.Verified,
		code.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create verification code",
			zap.Error(err),
			zap.String("user_id", code.UserID.String()),
		)
		return fmt.Errorf("create verification code for %s: %w", code.UserID.String(), err)
	}

	return nil
}

// FindLatestByUser returns the most recently issued code for the user.
// Ordering is explicit so concurrent issues resolve deterministically.
func (r *verificationCodeRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.VerificationCode, error) {
	query := `
		SELECT id, user_id, code, expires_at, verified, created_at
		FROM verification_codes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var code entity.VerificationCode
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&code.ID,
		&code.UserID,
		&code.Code,
		&code.ExpiresAt,
		&code.Verified,
		&code.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find verification code",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find verification code for %s: %w", userID.String(), err)
	}

	return &code, nil
}

func (r *verificationCodeRepository) MarkVerified(ctx context.Context, codeID uuid.UUID) error {
	query := `UPDATE verification_codes SET verified = true WHERE id = $1`

	result, err := r.db.Exec(ctx, query, codeID)
	if err != nil {
		r.log.Error("Failed to mark code verified",
			zap.Error(err),
			zap.String("code_id", codeID.String()),
		)
		return fmt.Errorf("mark code %s verified: %w", codeID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("verification code %s not found", codeID.String())
	}

	return nil
}
