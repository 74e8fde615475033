package auth

// UserProfile is the identity resolved from an accepted token, persisted
// alongside it under credstore.UserKey.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}
