package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactEnvelope struct {
	Data api.ContactResponse `json:"data"`
}

type contactPage struct {
	Data   []api.ContactResponse `json:"data"`
	Paging shared.Paging         `json:"paging"`
}

func createContact(t *testing.T, s *testServer, token string, req api.ContactRequest) api.ContactResponse {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/contacts", token, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp contactEnvelope
	decode(t, rr, &resp)
	return resp.Data
}

func TestContactHandler_CRUD(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.login(t, "khannedy")

	created := createContact(t, s, token, api.ContactRequest{
		FirstName: "Eko",
		LastName:  strPtr("Khannedy"),
		Email:     strPtr("eko@example.com"),
		Phone:     strPtr("08123456789"),
	})
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Eko", created.FirstName)
	require.NotNil(t, created.Email)
	assert.Equal(t, "eko@example.com", *created.Email)

	path := fmt.Sprintf("/api/contacts/%d", created.ID)

	rr := s.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got contactEnvelope
	decode(t, rr, &got)
	assert.Equal(t, created, got.Data)

	rr = s.do(t, http.MethodPut, path, token, api.ContactRequest{FirstName: "Budi"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated contactEnvelope
	decode(t, rr, &updated)
	assert.Equal(t, api.ContactResponse{ID: created.ID, FirstName: "Budi"}, updated.Data)
	assert.JSONEq(t,
		fmt.Sprintf(`{"data":{"id":%d,"first_name":"Budi","last_name":null,"email":null,"phone":null}}`, created.ID),
		rr.Body.String())

	rr = s.do(t, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rr.Body.String())

	rr = s.do(t, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "contact is not found", errorMessage(t, rr))
}

func TestContactHandler_Validation(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.login(t, "khannedy")

	tests := []struct {
		name          string
		body          api.ContactRequest
		expectedError string
	}{
		{
			name:          "missing first name",
			body:          api.ContactRequest{},
			expectedError: "first_name: length must be between 1 and 100",
		},
		{
			name:          "bad email",
			body:          api.ContactRequest{FirstName: "Eko", Email: strPtr("not-an-email")},
			expectedError: "email: must be a valid email address",
		},
		{
			name:          "phone too long",
			body:          api.ContactRequest{FirstName: "Eko", Phone: strPtr("012345678901234567890")},
			expectedError: "phone: length must be at most 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodPost, "/api/contacts", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.expectedError, errorMessage(t, rr))
		})
	}
	assert.Empty(t, s.contacts.Contacts)
}

func TestContactHandler_OtherUsersContact(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	alice := s.login(t, "alice")
	bob := s.login(t, "bob")

	created := createContact(t, s, alice, api.ContactRequest{FirstName: "Carol"})
	path := fmt.Sprintf("/api/contacts/%d", created.ID)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			var body any
			if method == http.MethodPut {
				body = api.ContactRequest{FirstName: "Mallory"}
			}
			rr := s.do(t, method, path, bob, body)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "contact is not found", errorMessage(t, rr))
		})
	}

	assert.Equal(t, "Carol", s.contacts.Contacts[created.ID].FirstName)
}

func TestContactHandler_InvalidID(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.login(t, "khannedy")

	rr := s.do(t, http.MethodGet, "/api/contacts/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "contactId: must be an integer", errorMessage(t, rr))
}

func TestContactHandler_Search(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.login(t, "khannedy")
	other := s.login(t, "other")

	for i := range 25 {
		createContact(t, s, token, api.ContactRequest{
			FirstName: fmt.Sprintf("Eko %d", i),
			Phone:     strPtr(fmt.Sprintf("0812%04d", i)),
		})
	}
	createContact(t, s, other, api.ContactRequest{FirstName: "Eko"})

	tests := []struct {
		name          string
		query         string
		expectedItems int
		expectedPage  shared.Paging
	}{
		{"defaults", "", 10, shared.Paging{Page: 1, TotalPage: 3, TotalItem: 25}},
		{"last page", "?page=3", 5, shared.Paging{Page: 3, TotalPage: 3, TotalItem: 25}},
		{"page below one", "?page=0", 10, shared.Paging{Page: 1, TotalPage: 3, TotalItem: 25}},
		{"size clamped high", "?size=1000", 25, shared.Paging{Page: 1, TotalPage: 1, TotalItem: 25}},
		{"size clamped low", "?size=0", 1, shared.Paging{Page: 1, TotalPage: 25, TotalItem: 25}},
		{"name filter", "?name=eko%201&size=100", 11, shared.Paging{Page: 1, TotalPage: 1, TotalItem: 11}},
		{"name filter paged", "?name=EKO%201", 10, shared.Paging{Page: 1, TotalPage: 2, TotalItem: 11}},
		{"phone filter", "?phone=0812002&size=100", 5, shared.Paging{Page: 1, TotalPage: 1, TotalItem: 5}},
		{"no match", "?email=nobody", 0, shared.Paging{Page: 1, TotalPage: 0, TotalItem: 0}},
		{"empty email excludes missing emails", "?email=", 0, shared.Paging{Page: 1, TotalPage: 0, TotalItem: 0}},
		{"empty phone keeps contacts with phones", "?phone=&size=100", 25, shared.Paging{Page: 1, TotalPage: 1, TotalItem: 25}},
		{"page beyond int range is clamped", "?page=9223372036854775807&size=100", 0,
			shared.Paging{Page: 92233720368547758, TotalPage: 1, TotalItem: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodGet, "/api/contacts"+tt.query, token, nil)
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			var resp contactPage
			decode(t, rr, &resp)
			assert.NotNil(t, resp.Data, "data must render as an array")
			assert.Len(t, resp.Data, tt.expectedItems)
			assert.Equal(t, tt.expectedPage, resp.Paging)
		})
	}

	t.Run("non-numeric page", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/api/contacts?page=two", token, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "page: must be an integer", errorMessage(t, rr))
	})
}
