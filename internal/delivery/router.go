package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"gib2sgf/internal/bootstrap"
	convertDelivery "gib2sgf/internal/delivery/convert"
)

// NewRouter mounts the conversion API. With LOCAL_CORS set every origin may
// call it, for a frontend served from another port.
func NewRouter(cfg bootstrap.Config, convertHandler *convertDelivery.ConvertHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.IsLocalCors {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Post("/convert", convertHandler.HandleConvert)
	r.Get("/conversions/{id}", convertHandler.GetConversionById)
	r.Get("/conversions/{id}/sgf", convertHandler.DownloadSgf)
	r.Get("/ws", convertHandler.HandleWebSocket)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	return r
}
