package models

// UserPatch is a partial update of a user record. Only non-nil / non-empty
// fields are sent, so a patch never clears fields it does not mention.
// Profile edits use the pointer fields; membership changes use the slices.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Position *string `json:"position,omitempty"`
	Password *string `json:"password,omitempty"`

	GroupIDs   []string `json:"groupIds,omitempty"`
	CompanyIDs []string `json:"companyIds,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Position == nil && p.Password == nil &&
		p.GroupIDs == nil && p.CompanyIDs == nil
}
