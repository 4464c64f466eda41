package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/mocks"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

// testServer wires real handlers and services over in-memory stores.
type testServer struct {
	router    http.Handler
	users     *mocks.MockUserStore
	contacts  *mocks.MockContactStore
	addresses *mocks.MockAddressStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := mocks.NewMockUserStore()
	contacts := mocks.NewMockContactStore()
	addresses := mocks.NewMockAddressStore(contacts)

	handlers := api.Handlers{
		Users: api.NewUserHandler(service.NewUserService(
			users, &mocks.MockPasswordHasher{}, &mocks.MockTokenGenerator{}, logger)),
		Contacts:  api.NewContactHandler(service.NewContactService(contacts, logger)),
		Addresses: api.NewAddressHandler(service.NewAddressService(addresses, logger)),
	}
	authMiddleware := middleware.NewAuthMiddleware(auth.NewSessionAuthenticator(users, logger))

	r := chi.NewRouter()
	r.Route("/api", api.Routes(handlers, authMiddleware.Authenticate))

	return &testServer{
		router:    r,
		users:     users,
		contacts:  contacts,
		addresses: addresses,
	}
}

// do sends a request with an optional JSON body and session token.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

// login registers username and returns a fresh session token.
func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()

	rr := s.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"username": username, "password": "rahasia", "name": username,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": username, "password": "rahasia",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Data api.LoginResponse `json:"data"`
	}
	decode(t, rr, &resp)
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

// errorMessage decodes an {"errors": "..."} body.
func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Errors string `json:"errors"`
	}
	decode(t, rr, &resp)
	return resp.Errors
}

func strPtr(s string) *string {
	return &s
}
