package usecase

import (
	"article-service/internal/data/repository"
	"article-service/pkg/notification"
	"article-service/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Verification VerificationService
	Article      ArticleService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	// Fall back to the logging sender when Twilio is not configured
	var sender notification.Sender
	if config.Twilio.AccountSID != "" && config.Twilio.AuthToken != "" {
		sender = notification.NewTwilioSender(config.Twilio, log)
	} else {
		log.Warn("Twilio not configured, verification codes will only be logged")
		sender = notification.NewLogSender(log)
	}

	return &Service{
		Auth:         NewAuthService(repo.User, config, log),
		Verification: NewVerificationService(repo, sender, config, log),
		Article:      NewArticleService(repo.Article, log),
	}
}
