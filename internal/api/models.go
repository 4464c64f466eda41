package api

import "github.com/phrazzld/contacts-api/internal/domain"

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"min=1,max=100"`
	Password string `json:"password" validate:"min=1,max=100"`
	Name     string `json:"name"     validate:"min=1,max=100"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"min=1,max=100"`
	Password string `json:"password" validate:"min=1,max=100"`
}

// UpdateUserRequest defines the payload for a profile update. Absent
// fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitnil,min=1,max=100"`
	Password *string `json:"password" validate:"omitnil,min=1,max=100"`
}

// UserResponse is the public view of a user. The password hash and token
// are never rendered.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginResponse carries the newly issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ContactRequest is the payload for both contact create and full update.
type ContactRequest struct {
	FirstName string  `json:"first_name" validate:"min=1,max=100"`
	LastName  *string `json:"last_name"  validate:"omitnil,max=100"`
	Email     *string `json:"email"      validate:"omitnil,email,max=200"`
	Phone     *string `json:"phone"      validate:"omitnil,max=20"`
}

// ContactResponse is the public view of a contact.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// AddressRequest is the payload for both address create and full update.
type AddressRequest struct {
	Street     *string `json:"street"      validate:"omitnil,max=255"`
	City       *string `json:"city"        validate:"omitnil,max=100"`
	Province   *string `json:"province"    validate:"omitnil,max=100"`
	Country    string  `json:"country"     validate:"min=1,max=100"`
	PostalCode string  `json:"postal_code" validate:"min=1,max=10"`
}

// AddressResponse is the public view of an address.
type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

func (req ContactRequest) toDomain(id int64) *domain.Contact {
	return &domain.Contact{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

func contactToResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

func (req AddressRequest) toDomain(contactID, id int64) *domain.Address {
	return &domain.Address{
		ID:         id,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
}

func addressToResponse(address *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
