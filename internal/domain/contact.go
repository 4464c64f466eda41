package domain

// Contact is a person record owned by exactly one user.
type Contact struct {
	ID        int64
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
	Username  string
}

// ContactFilter holds the optional search criteria. A nil field is absent;
// a present empty string still matches only rows where the column is set.
type ContactFilter struct {
	// Name matches first_name or last_name.
	Name  *string
	Email *string
	Phone *string
}
