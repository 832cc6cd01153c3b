// Package middleware holds the HTTP middleware of the service.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/psiagenda/agenda-service/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "token de administrador inválido"

// AdminAuth guards the admin routes with a shared token carried in the
// X-Admin-Token header
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
