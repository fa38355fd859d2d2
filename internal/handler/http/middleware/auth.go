package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdesk/backoffice-go/internal/domain/auth"
	"github.com/staffdesk/backoffice-go/internal/domain/user"
	"github.com/staffdesk/backoffice-go/internal/handler/http/response"
)

type authContextKey struct{}

// AuthRequired verifies the access token and resolves its claims into a
// typed user.AuthContext stored on the request context. Handlers read
// the context instead of raw claims.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			roleStr, _ := claims["role"].(string)
			authCtx := user.AuthContext{
				UserID: userID,
				Role:   user.ParseRole(roleStr),
			}
			if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
				authCtx.EmployeeID = &employeeID
			}

			ctx := context.WithValue(r.Context(), authContextKey{}, authCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// AuthFromContext returns the resolved authorization context. The
// boolean is false on routes that skipped AuthRequired.
func AuthFromContext(ctx context.Context) (user.AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey{}).(user.AuthContext)
	return authCtx, ok
}
