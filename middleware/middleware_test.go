package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"fairway/globals"
)

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return token
}

func TestAuthenticateRejectsUpgradeHeadersWithoutToken(t *testing.T) {
	// Upgrade headers on an authenticated HTTP route must not skip the
	// token check; the handler would read a missing identity otherwise.
	var called bool
	h := Authenticate(func(http.ResponseWriter, *http.Request, httprouter.Params) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	rr := httptest.NewRecorder()
	h(rr, req, nil)

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	h := Authenticate(func(http.ResponseWriter, *http.Request, httprouter.Params) {
		t.Fatal("handler must not run")
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/api/accounts", nil), nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticateSetsIdentityFromToken(t *testing.T) {
	var gotID string
	h := Authenticate(func(_ http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotID, _ = r.Context().Value(globals.UserIDKey).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user@x.com"))
	rr := httptest.NewRecorder()
	h(rr, req, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "user@x.com", gotID)
}
