package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fairway/globals"
)

func TestLogoutIgnoresBodySuppliedIdentity(t *testing.T) {
	// A body userid must never select the session to invalidate; without
	// an authenticated identity on the context the request is refused.
	body := strings.NewReader(`{"userid":"victim@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", body)
	rr := httptest.NewRecorder()

	LogoutUser(rr, req, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogoutRequiresNonEmptyIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	ctx := context.WithValue(req.Context(), globals.UserIDKey, "")
	rr := httptest.NewRecorder()

	LogoutUser(rr, req.WithContext(ctx), nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
