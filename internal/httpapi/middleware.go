package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/afterschool/lessons-api/internal/observability"
)

// maxLoggedBody caps how much of a request body ends up in the log.
const maxLoggedBody = 4 << 10

// RequestLogger records method, path and body for every inbound request.
// The body is re-attached so handlers can still read it.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.RequestURI()),
			}

			if r.Body != nil && r.Body != http.NoBody {
				body, err := io.ReadAll(r.Body)
				_ = r.Body.Close()
				if err == nil {
					r.Body = io.NopCloser(bytes.NewReader(body))
					if len(body) > 0 {
						logged := body
						if len(logged) > maxLoggedBody {
							logged = logged[:maxLoggedBody]
						}
						fields = append(fields, zap.ByteString("body", logged))
					}
				}
			}

			logger.Info("request", fields...)
			next.ServeHTTP(w, r)
		})
	}
}

// ServerTiming measures total request processing time, writes app;dur=... to
// Server-Timing and forwards the event to Metrics.ObserveHTTP.
func ServerTiming(m observability.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			dur := float64(time.Since(start).Microseconds()) / 1000.0
			observability.AppendServerTiming(w, "app", dur, "")
			m.ObserveHTTP(r.Method, r.URL.Path, ww.Status(), dur)
		})
	}
}
