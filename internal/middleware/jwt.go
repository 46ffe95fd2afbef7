package middleware

import (
	"net/http"
	"strings"

	"portfolio/internal/logger"
	"portfolio/internal/reqctx"
	"portfolio/internal/utils"
	"portfolio/internal/utils/helpers"

	"go.uber.org/zap"
)

// JWTAuth gates admin routes: a missing, malformed or expired bearer token
// short-circuits with 401 before any handler runs.
func JWTAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: missing bearer token",
					zap.String("path", r.URL.Path))
				helpers.Error(w, http.StatusUnauthorized, "missing access token")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			adminID, username, err := utils.ParseToken(jwtSecret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: invalid or expired token", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := reqctx.WithAdminID(r.Context(), adminID)
			ctx = reqctx.WithUsername(ctx, username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
