package router

import (
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"todo-list/internal/config"
	"todo-list/internal/http/handlers"
)

func New(handler *handlers.TaskHandler, cfg config.HTTPConfig, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /tasks", handler.Create)
	mux.HandleFunc("GET /tasks", handler.List)
	mux.HandleFunc("GET /tasks/{title}", handler.Get)
	mux.HandleFunc("DELETE /tasks/{title}", handler.Remove)
	mux.HandleFunc("PUT /tasks/{title}/priority", handler.SetPriority)
	mux.HandleFunc("GET /priorities", handler.Priorities)

	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst)
	}

	return requestID(accessLog(log, rateLimit(limiter, mux)))
}
