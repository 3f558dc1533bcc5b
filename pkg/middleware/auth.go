package middleware

import (
	"net/http"
	"strings"

	"stay-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// StaffKey guards staff-only routes. The presented API key is compared with
// a bcrypt hash from config so the plaintext key never lives in the process
// environment or config file.
func StaffKey(config utils.AdminConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.APIKeyHash == "" {
				logger.Error("Staff API key hash not configured, refusing staff request",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Staff access not configured")
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(config.APIKeyHash), []byte(parts[1])); err != nil {
				logger.Warn("Staff key rejected",
					zap.String("path", r.URL.Path),
					zap.String("ip", ClientIP(r)),
				)
				utils.ResponseForbidden(w, "Staff access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
