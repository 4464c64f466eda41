package domain

// User is a registered account. Username is the primary key.
type User struct {
	Username     string
	PasswordHash string
	Name         string
	// Token is the current session token; nil when logged out.
	Token *string
}

// UserUpdate holds the optional profile changes accepted by an update.
// Nil fields are left unchanged.
type UserUpdate struct {
	Name     *string
	Password *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Password == nil
}
