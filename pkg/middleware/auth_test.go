package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stay-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestStaffKey(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("staff-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := StaffKey(utils.AdminConfig{APIKeyHash: string(hash)}, zap.NewNop())(next)

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/admin/reservations/x/cancel", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid key passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("Bearer staff-secret").Code)
	})

	t.Run("wrong key forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do("Bearer wrong").Code)
	})

	t.Run("missing header unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("malformed header unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("staff-secret").Code)
	})

	t.Run("unconfigured hash refuses everything", func(t *testing.T) {
		unset := StaffKey(utils.AdminConfig{}, zap.NewNop())(next)
		req := httptest.NewRequest(http.MethodPut, "/api/admin/reservations/x/cancel", nil)
		req.Header.Set("Authorization", "Bearer staff-secret")
		rec := httptest.NewRecorder()
		unset.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
