package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"article-service/internal/data/entity"
	"article-service/internal/data/repository"
	"article-service/pkg/notification"
	"article-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VerificationService drives the phone-verification workflow gating password
// reset: issue a code, verify it, then reset the password.
type VerificationService interface {
	ForgotPassword(ctx context.Context, phoneNumber string) error
	VerifyCode(ctx context.Context, phoneNumber, code string) error
	ResetPassword(ctx context.Context, phoneNumber, newPassword string) error
}

type verificationService struct {
	repo   *repository.Repository
	sender notification.Sender
	config *utils.Config
	log    *zap.Logger
}

func NewVerificationService(
	repo *repository.Repository,
	sender notification.Sender,
	config *utils.Config,
	log *zap.Logger,
) VerificationService {
	return &verificationService{
		repo:   repo,
		sender: sender,
		config: config,
		log:    log,
	}
}

// ForgotPassword persists a fresh code for the user, then dispatches it. The
// order is deliberate: a dispatch failure leaves a usable but undelivered
// code behind and surfaces ErrDispatchFailed.
func (s *verificationService) ForgotPassword(ctx context.Context, phoneNumber string) error {
	user, err := s.repo.User.FindByPhone(ctx, phoneNumber)
	if err != nil {
		s.log.Error("Failed to find user by phone", zap.Error(err))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	code := &entity.VerificationCode{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Code:      utils.GenerateCode(s.config.Code.Length),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Code.ExpiryMinutes) * time.Minute),
		Verified:  false,
	}

	if err := s.repo.VerificationCode.Create(ctx, code); err != nil {
		s.log.Error("Failed to save verification code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("save verification code: %w", err)
	}

	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code.Code, s.config.Code.ExpiryMinutes)

	if err := s.sender.Send(ctx, phoneNumber, message); err != nil {
		s.log.Error("Failed to dispatch verification code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return ErrDispatchFailed
	}

	s.log.Info("Verification code issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", code.ExpiresAt))

	return nil
}

func (s *verificationService) VerifyCode(ctx context.Context, phoneNumber, code string) error {
	user, err := s.repo.User.FindByPhone(ctx, phoneNumber)
	if err != nil {
		s.log.Error("Failed to find user by phone", zap.Error(err))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrPhoneNotFound
	}

	stored, err := s.repo.VerificationCode.FindLatestByUser(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to load verification code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("load verification code: %w", err)
	}
	if stored == nil {
		return ErrNoCodeRegistered
	}

	if stored.Expired(time.Now()) {
		return ErrCodeExpired
	}

	if stored.Code != code {
		return ErrCodeMismatch
	}

	if err := s.repo.VerificationCode.MarkVerified(ctx, stored.ID); err != nil {
		s.log.Error("Failed to mark code verified",
			zap.Error(err), zap.String("code_id", stored.ID.String()))
		return fmt.Errorf("mark code verified: %w", err)
	}

	s.log.Info("Phone number verified", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *verificationService) ResetPassword(ctx context.Context, phoneNumber, newPassword string) error {
	if phoneNumber == "" || newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.repo.User.FindByPhone(ctx, phoneNumber)
	if err != nil {
		s.log.Error("Failed to find user by phone", zap.Error(err))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrPhoneNotFound
	}

	stored, err := s.repo.VerificationCode.FindLatestByUser(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to load verification code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("load verification code: %w", err)
	}
	if stored == nil {
		return ErrNoCodeRegistered
	}
	if !stored.Verified {
		return ErrNotVerified
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	// The verified re-check and password write commit together; the codes are
	// consumed in the same transaction, so a verified code works once.
	err = s.repo.User.ResetPasswordVerified(ctx, user.ID, stored.ID, hashedPassword)
	if errors.Is(err, repository.ErrCodeNotVerified) {
		return ErrNotVerified
	}
	if err != nil {
		s.log.Error("Failed to reset password",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}
