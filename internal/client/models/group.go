package models

// Group is a work group owned by a company. ManagerID optionally references
// a User; the reference is not enforced server-side, so it may dangle and
// consumers must tolerate that.
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	ManagerID string `json:"managerId,omitempty"`
}
