package middleware

import (
	"log"
	"net/http"
	"time"
)

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap the response writer to capture the status code
		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		// Identify the user when hydration already ran
		userInfo := "anonymous"
		if user := GetUserFromContext(r.Context()); user != nil {
			userInfo = user.Email
		}

		duration := time.Since(start)
		log.Printf(
			"%s %s %d %v - User: %s - IP: %s",
			r.Method,
			r.URL.Path,
			wrapped.statusCode,
			duration,
			userInfo,
			r.RemoteAddr,
		)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
