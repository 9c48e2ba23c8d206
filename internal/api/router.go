package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nunnu1028/kkutu-korea-hack/internal/api/apierr"
	"github.com/nunnu1028/kkutu-korea-hack/internal/api/handler"
	"github.com/nunnu1028/kkutu-korea-hack/internal/api/response"
	"github.com/nunnu1028/kkutu-korea-hack/internal/middleware"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Loop   handler.LoopController
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	loopHandler := handler.NewLoopHandler(cfg.Loop)

	// Unmatched requests skip router middleware, so log them here
	logged := middleware.Logging(cfg.Logger)
	notFound := logged(http.HandlerFunc(notFoundHandler))
	methodNotAllowed := logged(http.HandlerFunc(methodNotAllowedHandler))
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(logged)
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.NotFoundHandler = notFound
	api.MethodNotAllowedHandler = methodNotAllowed

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Loop control
	api.HandleFunc("/loop", loopHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/loop/start", loopHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/loop/stop", loopHandler.Stop).Methods(http.MethodPost)
	api.HandleFunc("/loop/used-words", loopHandler.ResetUsedWords).Methods(http.MethodDelete)

	api.HandleFunc("/suggestions", loopHandler.Suggestions).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewMethodNotAllowedError(r.Method))
}

// apiPanicHandler answers panics with the JSON error envelope
func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
