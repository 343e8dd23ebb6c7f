package middlewares

import (
	"context"
	"net/http"
	"strings"

	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
)

// Authenticate verifies the bearer token and stows the patient email from its
// claims into the request context for downstream handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		email, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PATIENT_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate. It loads the user behind the
// token's email and rejects anyone without the admin role.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(constvars.CONTEXT_PATIENT_EMAIL_KEY).(string)
		if email == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		user, err := m.UserRepository.FindByEmail(r.Context(), email)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if user == nil || !user.IsAdmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
