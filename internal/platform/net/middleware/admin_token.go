package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	perr "lettings/internal/platform/errors"
	pnet "lettings/internal/platform/net"
)

// AdminToken guards routes with a static bearer token held by the operator.
// An empty configured token disables the check (local development).
func AdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				status, body := pnet.Error(
					perr.Unauthorizedf("missing or invalid admin token"),
					pnet.RequestID(r.Context()),
				)
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(status)
				_ = json.NewEncoder(w).Encode(body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
