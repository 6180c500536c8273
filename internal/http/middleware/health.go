package middleware

import "net/http"

const HealthPath = "/healthz"

// Health answers liveness probes before the rest of the chain runs.
func Health() func(http.Handler) http.Handler {
	body := []byte(`{"status":"ok"}`)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == HealthPath && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				//nolint:errcheck
				w.Write(body)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
