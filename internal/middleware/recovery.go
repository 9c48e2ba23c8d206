package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
)

// PanicHandler writes the response for a request whose handler panicked
type PanicHandler func(w http.ResponseWriter, r *http.Request, recovered any)

// Recovery logs handler panics with the matched route and answers through
// onPanic, or a bare 500 when onPanic is nil. http.ErrAbortHandler is
// re-raised so net/http still aborts the connection.
func Recovery(logger *slog.Logger, onPanic PanicHandler) func(http.Handler) http.Handler {
	logger = logger.With(slog.String("component", "api"))
	if onPanic == nil {
		onPanic = func(w http.ResponseWriter, _ *http.Request, _ any) {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "handler panicked",
					slog.Any("panic", rec),
					slog.String("request_id", w.Header().Get(RequestIDHeader)),
					slog.String("method", r.Method),
					slog.String("route", routeTemplate(r)),
					slog.String("stack", string(debug.Stack())),
				)
				onPanic(w, r, rec)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// routeTemplate names the mux route, so /loop/{id} style paths group in logs
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
