package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var called bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, ok := UserID(r.Context())
		require.True(t, ok)
		gotUserID = userID
	}))

	t.Run("valid user id", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
		req.Header.Set(HeaderUserID, "123456")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, int64(123456), gotUserID)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "\"success\":false")
	})

	t.Run("malformed header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
		req.Header.Set(HeaderUserID, "not-a-number")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	mw := AdminOnly([]int64{111})

	var called bool
	handler := Auth(mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	t.Run("admin passes", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/admin/slots", nil)
		req.Header.Set(HeaderUserID, "111")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user rejected", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/admin/slots", nil)
		req.Header.Set(HeaderUserID, "222")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
