// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"
	"time"

	"gitscout/internal/platform/logger"
)

// AccessLogOptions tunes the access log middleware
type AccessLogOptions struct {
	// Slow lifts requests that take >= Slow to warn level, 0 disables the lift
	Slow time.Duration
}

// meterWriter records the status code and payload size on the way out
type meterWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (mw *meterWriter) WriteHeader(code int) {
	mw.status = code
	mw.ResponseWriter.WriteHeader(code)
}

func (mw *meterWriter) Write(b []byte) (int, error) {
	n, err := mw.ResponseWriter.Write(b)
	if n > 0 {
		mw.bytes += n
	}
	return n, err
}

// AccessLogZerolog emits one line per request with method, path, status,
// elapsed time and bytes written, through the request scoped logger
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meter := &meterWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(meter, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", meter.status).
				Int("bytes", meter.bytes).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
