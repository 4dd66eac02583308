package stores

import "github.com/dkovalenko/crewdesk/internal/client/models"

// VisibleGroups computes the role-dependent subset of groups an identity
// may see. Admins see everything; managers see the groups they manage plus
// the groups they belong to; everyone else sees only their own groups.
// Role precedence is admin, then manager, then user. Pure function of its
// inputs, recomputed per call.
func VisibleGroups(me models.User, groups []models.Group) []models.Group {
	visible := make([]models.Group, 0, len(groups))

	switch {
	case me.HasRole(models.RoleAdmin):
		visible = append(visible, groups...)
	case me.HasRole(models.RoleManager):
		for _, g := range groups {
			if g.ManagerID == me.ID || me.InGroup(g.ID) {
				visible = append(visible, g)
			}
		}
	default:
		for _, g := range groups {
			if me.InGroup(g.ID) {
				visible = append(visible, g)
			}
		}
	}

	return visible
}

// Coworkers returns the users who share at least one of the visible groups
// with me, excluding me, in roster order and without duplicates.
func Coworkers(me models.User, users []models.User, visible []models.Group) []models.User {
	visibleIDs := make(map[string]struct{}, len(visible))
	for _, g := range visible {
		visibleIDs[g.ID] = struct{}{}
	}

	seen := make(map[string]struct{})
	coworkers := make([]models.User, 0)
	for _, u := range users {
		if u.ID == me.ID {
			continue
		}
		if _, dup := seen[u.ID]; dup {
			continue
		}
		for _, gid := range u.GroupIDs {
			if _, ok := visibleIDs[gid]; ok {
				seen[u.ID] = struct{}{}
				coworkers = append(coworkers, u.Clone())
				break
			}
		}
	}
	return coworkers
}

// Members returns the users whose membership list contains groupID.
func Members(groupID string, users []models.User) []models.User {
	members := make([]models.User, 0)
	for _, u := range users {
		if u.InGroup(groupID) {
			members = append(members, u.Clone())
		}
	}
	return members
}
