package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifzapp/hifz-api/internal/config"
	"github.com/hifzapp/hifz-api/internal/service/auth"
)

func newTestJWTService(t *testing.T, tokenLifetimeMinutes int) auth.JWTService {
	t.Helper()

	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "test-secret-key-thats-at-least-32-chars-long",
		TokenLifetimeMinutes:        tokenLifetimeMinutes,
		RefreshTokenLifetimeMinutes: 7 * 24 * 60,
	})
	require.NoError(t, err)
	return svc
}

// protectedProbe records whether the wrapped handler ran and which user ID it saw.
type protectedProbe struct {
	called bool
	userID uuid.UUID
	hasID  bool
}

func (p *protectedProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.userID, p.hasID = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := newTestJWTService(t, 60)
	userID := uuid.New()

	token, err := jwtService.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	probe := &protectedProbe{}
	handler := NewAuthMiddleware(jwtService).Authenticate(probe.handler())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, probe.called)
	assert.True(t, probe.hasID)
	assert.Equal(t, userID, probe.userID)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtService := newTestJWTService(t, 60)
	refreshToken, err := jwtService.GenerateRefreshToken(context.Background(), uuid.New())
	require.NoError(t, err)

	// Pre-expired beyond the allowed clock skew.
	expiredService := newTestJWTService(t, -10)
	expiredToken, err := expiredService.GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name            string
		authHeader      string
		expectedMessage string
	}{
		{
			name:            "missing header",
			authHeader:      "",
			expectedMessage: "Authorization header required",
		},
		{
			name:            "not a bearer token",
			authHeader:      "Basic dXNlcjpwYXNz",
			expectedMessage: "Invalid authorization format",
		},
		{
			name:            "garbage token",
			authHeader:      "Bearer not.a.jwt",
			expectedMessage: "Invalid token",
		},
		{
			name:            "refresh token on an access route",
			authHeader:      "Bearer " + refreshToken,
			expectedMessage: "Invalid token",
		},
		{
			name:            "expired token",
			authHeader:      "Bearer " + expiredToken,
			expectedMessage: "Token expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &protectedProbe{}
			handler := NewAuthMiddleware(jwtService).Authenticate(probe.handler())

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMessage)
			assert.False(t, probe.called)
		})
	}
}

func TestGetUserID_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserID(req)
	assert.False(t, ok)
}
