package domain

// Address belongs to a contact. It has no owner of its own; ownership is
// always resolved through the parent contact.
type Address struct {
	ID         int64
	ContactID  int64
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode string
}
