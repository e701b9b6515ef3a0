package wire

import (
	"article-service/internal/adaptor"
	"article-service/pkg/middleware"
	"article-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireArticle(
	r chi.Router,
	articleHandler *adaptor.ArticleHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/articles", func(r chi.Router) {
		// Public routes
		r.Get("/list", articleHandler.ListPublished)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.JWT, log))

			r.Post("/new", articleHandler.Create)
			r.Get("/my-articles", articleHandler.ListMine)
			r.Put("/update", articleHandler.Update)
			r.Delete("/delete/{id}", articleHandler.Delete)
		})
	})
}
