package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"outfiter/metrics"
)

// statusRecorder captures the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger returns middleware that logs requests using zerolog
// and updates the request counters
func RequestLogger(reg *metrics.Registry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rid := r.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", rid)

			// Attach request-scoped logger
			logger := log.With().
				Str("request_id", rid).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Logger()
			r = r.WithContext(logger.WithContext(r.Context()))

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			labels := map[string]string{
				"method": r.Method,
				"path":   routeTemplate(r),
				"status": statusClass(rec.status),
			}
			if reg != nil {
				reg.Inc(r.Context(), "http_requests_total", labels, 1)
			}

			if rec.status >= 500 {
				if reg != nil {
					reg.Inc(r.Context(), "http_requests_errors_total", labels, 1)
				}
				logger.Error().Int("status", rec.status).Dur("duration", duration).Msg("❌ http request failed")
				return
			}
			logger.Info().Int("status", rec.status).Dur("duration", duration).Msg("http request served")
		})
	}
}

// routeTemplate keeps counter cardinality bounded by using the matched route
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

func statusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "0"
	}
}
