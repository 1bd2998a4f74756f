package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/ernitinjai/meenicode-pos/application/auth"
	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/utils/errors"
	"github.com/gorilla/mux"
)

// SessionMiddleware gates the dashboard and inventory screens on the
// persisted session. Public screens pass through untouched.
func SessionMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			session, err := authApp.Current(r.Context())
			if err != nil {
				writeError(w, err)
				return
			}
			if session == nil || !session.Authenticated {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are reachable without a session
func isPublicPath(path string) bool {
	if path == "/" || path == "/login" || path == "/register" || path == "/logout" {
		return true
	}
	// Trailing-slash variants from proxies
	trimmed := strings.TrimSuffix(path, "/")
	return trimmed == "/login" || trimmed == "/register" || trimmed == "/logout"
}
