package wire

import (
	"article-service/internal/adaptor"
	"article-service/pkg/middleware"
	"article-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		// Public routes
		r.Post("/new", userHandler.Register)
		r.Post("/login", userHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.JWT, log))

			r.Get("/whoami", userHandler.WhoAmI)
			r.Post("/forget-password", userHandler.ForgotPassword)
			r.Post("/verify-code", userHandler.VerifyCode)
			r.Post("/reset-password", userHandler.ResetPassword)
		})
	})
}
