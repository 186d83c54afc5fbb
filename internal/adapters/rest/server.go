package rest

import (
	core_port "ad-service/internal/core/port"
	"context"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	ad_handlers *AdHandler,
	search_handlers *SearchHandler,
	auth *AuthMiddleware,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// публичные роуты
		r.Post("/ads/search", search_handlers.SearchAds)
		r.Get("/ads/{adID}", ad_handlers.GetAdByID)
		r.Get("/stats", ad_handlers.GetStats)

		// роуты, требующие аутентификации
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Post("/ads", ad_handlers.CreateAd)
			r.Get("/my-ads", ad_handlers.GetMyAds)
			r.Patch("/ads/{adID}/status", ad_handlers.UpdateAdStatus)
			r.Delete("/ads/{adID}", ad_handlers.DeleteAd)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
