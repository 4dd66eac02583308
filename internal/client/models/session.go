package models

// Session pairs the authenticated identity with its opaque access token.
// Both fields are present together or the session does not exist; the
// stores never hold one without the other.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
