package middlewares

import (
	"net/http"
	"time"

	ports "prreview-service/internal/domain/ports/output"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLoggerMiddleware logs method, path, status and duration per request.
func RequestLoggerMiddleware(log ports.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
				"request_id", chiMiddleware.GetReqID(r.Context()),
			)
		})
	}
}
