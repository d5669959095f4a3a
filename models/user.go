package models

// User is the authenticated account identity exposed by the auth
// dependency. A zero-value User means no session is bound.
type User struct {
	// UserId is the stable account identifier assigned by the auth backend.
	UserId string `json:"userId"`

	// Name is the display name shown next to messages.
	Name string `json:"name"`

	// Email is the account email. Together with Name it is used for the
	// own-message check during reconciliation; this is a display-level
	// identity match, not a cryptographic one.
	Email string `json:"email"`
}

// IsZero reports whether no authenticated user is bound.
func (u User) IsZero() bool {
	return u.UserId == "" && u.Name == "" && u.Email == ""
}
