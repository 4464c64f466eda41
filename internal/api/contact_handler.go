package api

import (
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
)

// ContactHandler handles contact requests for the authenticated user.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Create handles POST /api/contacts
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req ContactRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	contact, err := h.contactService.Create(r.Context(), user.Username, req.toDomain(0))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, contactToResponse(contact))
}

// Get handles GET /api/contacts/{contactId}
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	id, err := getPathID(r, ContactIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	contact, err := h.contactService.Get(r.Context(), user.Username, id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, contactToResponse(contact))
}

// Update handles PUT /api/contacts/{contactId}
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	id, err := getPathID(r, ContactIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req ContactRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	contact, err := h.contactService.Update(r.Context(), user.Username, req.toDomain(id))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, contactToResponse(contact))
}

// Delete handles DELETE /api/contacts/{contactId}
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	id, err := getPathID(r, ContactIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.contactService.Delete(r.Context(), user.Username, id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, "OK")
}

// Search handles GET /api/contacts?name=&email=&phone=&page=&size=
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := getQueryInt(r, "page")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	size, err := getQueryInt(r, "size")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	filter := domain.ContactFilter{
		Name:  getQueryString(r, "name"),
		Email: getQueryString(r, "email"),
		Phone: getQueryString(r, "phone"),
	}

	result, err := h.contactService.Search(r.Context(), user.Username, filter, domain.NewPageRequest(page, size))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	items := make([]ContactResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, contactToResponse(&result.Items[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.PagedEnvelope[[]ContactResponse]{
		Data: items,
		Paging: shared.Paging{
			Page:      result.Page,
			TotalPage: result.TotalPages,
			TotalItem: result.TotalItems,
		},
	})
}
