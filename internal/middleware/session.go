package middleware

import "net/http"

// SessionName is the cookie session holding all per-browser state
const SessionName = "session"

// Fixed session value keys
const (
	SessionKeyToken    = "auth_token"
	SessionKeyUser     = "user"
	SessionKeyCart     = "cart"
	SessionKeyCheckout = "checkout"
)

// SecureHeaders adds security headers to responses
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Only set HSTS for HTTPS
		if r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
