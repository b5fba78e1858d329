package middleware

import (
	"net/http"

	"secure-it/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID keeps a caller-supplied X-Request-ID or generates one, stores it
// in the request context and echoes it on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = utils.GenerateUUIDString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := utils.SetRequestIDContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
