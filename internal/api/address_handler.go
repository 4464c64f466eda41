package api

import (
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
)

// AddressHandler handles address requests nested under a contact.
type AddressHandler struct {
	addressService service.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// contactScope extracts the acting user and the contact id, writing an
// error response and returning false if either is unavailable.
func contactScope(w http.ResponseWriter, r *http.Request) (*domain.User, int64, bool) {
	user, err := currentUser(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return nil, 0, false
	}

	contactID, err := getPathID(r, ContactIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return nil, 0, false
	}
	return user, contactID, true
}

// addressScope is contactScope plus the address id.
func addressScope(w http.ResponseWriter, r *http.Request) (*domain.User, int64, int64, bool) {
	user, contactID, ok := contactScope(w, r)
	if !ok {
		return nil, 0, 0, false
	}

	addressID, err := getPathID(r, AddressIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return nil, 0, 0, false
	}
	return user, contactID, addressID, true
}

// Create handles POST /api/contacts/{contactId}/addresses
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := contactScope(w, r)
	if !ok {
		return
	}

	var req AddressRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	address, err := h.addressService.Create(r.Context(), user.Username, req.toDomain(contactID, 0))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, addressToResponse(address))
}

// List handles GET /api/contacts/{contactId}/addresses
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := contactScope(w, r)
	if !ok {
		return
	}

	addresses, err := h.addressService.List(r.Context(), user.Username, contactID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	items := make([]AddressResponse, 0, len(addresses))
	for i := range addresses {
		items = append(items, addressToResponse(&addresses[i]))
	}
	shared.RespondWithData(w, r, items)
}

// Get handles GET /api/contacts/{contactId}/addresses/{addressId}
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, contactID, addressID, ok := addressScope(w, r)
	if !ok {
		return
	}

	address, err := h.addressService.Get(r.Context(), user.Username, contactID, addressID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, addressToResponse(address))
}

// Update handles PUT /api/contacts/{contactId}/addresses/{addressId}
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, contactID, addressID, ok := addressScope(w, r)
	if !ok {
		return
	}

	var req AddressRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	address, err := h.addressService.Update(r.Context(), user.Username, req.toDomain(contactID, addressID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, addressToResponse(address))
}

// Delete handles DELETE /api/contacts/{contactId}/addresses/{addressId}
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, contactID, addressID, ok := addressScope(w, r)
	if !ok {
		return
	}

	if err := h.addressService.Delete(r.Context(), user.Username, contactID, addressID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, "OK")
}
