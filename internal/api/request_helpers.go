package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// Path parameter names shared by the router and the handlers.
const (
	ContactIDParam = "contactId"
	AddressIDParam = "addressId"
)

// currentUser returns the user placed in the context by the auth
// middleware. A missing user means the route was mounted without it, and
// the request is rejected as unauthorized.
func currentUser(r *http.Request) (*domain.User, error) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		return nil, auth.ErrUnauthorized
	}
	return user, nil
}

// getPathID extracts an integer id from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName + ": is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName + ": must be an integer")
	}
	return id, nil
}

// getQueryInt returns the named query parameter as an int, or nil when it
// is absent.
func getQueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewValidationError(name + ": must be an integer")
	}
	return &n, nil
}

// getQueryString returns the named query parameter, or nil when the request
// does not carry it. A parameter given with an empty value is not nil.
func getQueryString(r *http.Request, name string) *string {
	query := r.URL.Query()
	if !query.Has(name) {
		return nil
	}
	value := query.Get(name)
	return &value
}

// decodeAndValidate decodes the JSON body into req and checks its
// validate tags.
func decodeAndValidate(r *http.Request, req any) error {
	if err := shared.DecodeJSON(r, req); err != nil {
		return err
	}
	return shared.ValidateRequest(req)
}
