package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	user := &domain.User{Username: "khannedy", Name: "Eko"}
	authenticator := &mocks.MockAuthenticator{
		Tokens: map[string]*domain.User{"valid-token": user},
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedUser   string
	}{
		{"raw token", "valid-token", http.StatusOK, "khannedy"},
		{"bearer token", "Bearer valid-token", http.StatusOK, "khannedy"},
		{"lowercase bearer", "bearer valid-token", http.StatusOK, "khannedy"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"bearer without token", "Bearer ", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer other-token", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen *domain.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = shared.UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			NewAuthMiddleware(authenticator).Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedUser == "" {
				assert.Nil(t, seen)
				assert.JSONEq(t, `{"errors":"Unauthorized"}`, rr.Body.String())
				return
			}
			require.NotNil(t, seen)
			assert.Equal(t, tt.expectedUser, seen.Username)
		})
	}
}

func TestAuthMiddleware_AuthenticatorFailure(t *testing.T) {
	t.Parallel()

	authenticator := &mocks.MockAuthenticator{
		AuthenticateFn: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, errors.New("failed to resolve session token: connection refused")
		},
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set("Authorization", "valid-token")
	rr := httptest.NewRecorder()

	NewAuthMiddleware(authenticator).Authenticate(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"errors":"Internal server error"}`, rr.Body.String())
}

func TestTokenFromHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", tokenFromHeader("abc"))
	assert.Equal(t, "abc", tokenFromHeader("Bearer abc"))
	assert.Equal(t, "abc", tokenFromHeader("  BEARER   abc "))
	assert.Equal(t, "Bearer", tokenFromHeader("Bearer"))
	assert.Equal(t, "", tokenFromHeader("   "))
}
