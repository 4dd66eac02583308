package stores

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dkovalenko/crewdesk/internal/client/api"
	"github.com/dkovalenko/crewdesk/internal/client/models"
	"github.com/dkovalenko/crewdesk/internal/logging"
)

// DirectoryStore owns the roster snapshots (users and groups) and is the
// only writer of membership changes. Group visibility and the coworker list
// are derived from the snapshots per read, never cached.
type DirectoryStore struct {
	api api.Client
	log logging.Logger

	mu      sync.RWMutex
	users   []models.User
	groups  []models.Group
	loading bool
}

func NewDirectoryStore(apiClient api.Client, log logging.Logger) *DirectoryStore {
	return &DirectoryStore{
		api: apiClient,
		log: log.With("component", "directory"),
	}
}

// Refresh fetches the user and group collections concurrently and commits
// both snapshots together. If either fetch fails the previous snapshot is
// kept; callers never observe a half-updated roster.
func (d *DirectoryStore) Refresh(ctx context.Context) error {
	d.setLoading(true)
	defer d.setLoading(false)

	var (
		users  []models.User
		groups []models.Group
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = d.api.Users(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = d.api.Groups(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refreshing directory: %w", err)
	}

	d.mu.Lock()
	d.users = users
	d.groups = groups
	d.mu.Unlock()
	return nil
}

func (d *DirectoryStore) setLoading(v bool) {
	d.mu.Lock()
	d.loading = v
	d.mu.Unlock()
}

func (d *DirectoryStore) Loading() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loading
}

// Users returns a copy of the roster snapshot.
func (d *DirectoryStore) Users() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.User, len(d.users))
	for i, u := range d.users {
		out[i] = u.Clone()
	}
	return out
}

// Groups returns a copy of the group snapshot.
func (d *DirectoryStore) Groups() []models.Group {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.groups)
}

func (d *DirectoryStore) UserByID(id string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.users {
		if d.users[i].ID == id {
			return d.users[i].Clone(), true
		}
	}
	return models.User{}, false
}

// ManagerName resolves a group's manager for display. A group without a
// manager yields ""; a dangling reference yields "unknown", since the
// backend does not enforce the reference.
func (d *DirectoryStore) ManagerName(g models.Group) string {
	if g.ManagerID == "" {
		return ""
	}
	if u, ok := d.UserByID(g.ManagerID); ok {
		return u.Name
	}
	return "unknown"
}

// AddUserToGroup adds the user with the given email to the group. The email
// is normalized (trim + lowercase) and matched case-insensitively against
// the current snapshot; the first match wins. Adding a user who is already
// a member succeeds without any change. When the group carries a company,
// the company id is unioned into the user's affiliations. The backend write
// happens before the snapshot is touched, so a failed call leaves the
// roster exactly as it was.
func (d *DirectoryStore) AddUserToGroup(ctx context.Context, email, groupID string) error {
	email = normalizeEmail(email)

	d.mu.RLock()
	userPtr := matchEmail(d.users, email)
	var user models.User
	if userPtr != nil {
		user = userPtr.Clone()
	}
	var group *models.Group
	for i := range d.groups {
		if d.groups[i].ID == groupID {
			g := d.groups[i]
			group = &g
			break
		}
	}
	d.mu.RUnlock()

	if userPtr == nil {
		return &UserNotFoundError{Email: email}
	}
	if group == nil {
		return &GroupNotFoundError{GroupID: groupID}
	}
	if user.InGroup(groupID) {
		return nil
	}

	groupIDs := append(slices.Clone(user.GroupIDs), groupID)
	companyIDs := slices.Clone(user.CompanyIDs)
	if group.Company != "" && !slices.Contains(companyIDs, group.Company) {
		companyIDs = append(companyIDs, group.Company)
	}

	patch := models.UserPatch{GroupIDs: groupIDs, CompanyIDs: companyIDs}
	updated, err := d.api.UpdateUser(ctx, user.ID, patch)
	if err != nil {
		return fmt.Errorf("adding %s to group %s: %w", email, groupID, err)
	}

	d.mu.Lock()
	for i := range d.users {
		if d.users[i].ID == updated.ID {
			d.users[i] = updated
			break
		}
	}
	d.mu.Unlock()

	d.log.Info(ctx, "added user to group", "user_id", updated.ID, "group_id", groupID)
	return nil
}

// VisibleGroups returns the groups the given identity may see, computed
// from the current snapshot.
func (d *DirectoryStore) VisibleGroups(me models.User) []models.Group {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return VisibleGroups(me, d.groups)
}

// Coworkers returns the users sharing at least one visible group with the
// given identity, computed from the current snapshot.
func (d *DirectoryStore) Coworkers(me models.User) []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Coworkers(me, d.users, VisibleGroups(me, d.groups))
}

// Members returns the users belonging to the given group.
func (d *DirectoryStore) Members(groupID string) []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Members(groupID, d.users)
}
