// Package models defines the records exchanged with the workforce backend
// and persisted locally. JSON field names follow the backend's collection
// schema, so these structs marshal directly onto the wire.
package models

import "slices"

// Role is an access level attached to a user. A user carries at least one
// role; when several are present, admin takes precedence over manager,
// and manager over user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// User is a roster identity. Email is the lookup key and is unique across
// the roster (case-insensitively, enforced at registration). GroupIDs and
// CompanyIDs have set semantics: an id never repeats.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Avatar     string   `json:"avatar"`
	Position   string   `json:"position"`
	Roles      []Role   `json:"roles"`
	GroupIDs   []string `json:"groupIds"`
	CompanyIDs []string `json:"companyIds"`

	// Password is the roster credential secret. The backend keeps it on the
	// user record; it is compared during login and never displayed. It stays
	// on the in-memory identity after login, which is a known limitation of
	// this system.
	Password string `json:"password,omitempty"`
}

func (u User) HasRole(r Role) bool {
	return slices.Contains(u.Roles, r)
}

func (u User) InGroup(groupID string) bool {
	return slices.Contains(u.GroupIDs, groupID)
}

// Clone returns a deep copy so snapshots handed out by stores cannot be
// mutated behind their back.
func (u User) Clone() User {
	c := u
	c.Roles = slices.Clone(u.Roles)
	c.GroupIDs = slices.Clone(u.GroupIDs)
	c.CompanyIDs = slices.Clone(u.CompanyIDs)
	return c
}
