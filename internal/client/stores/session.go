// Package stores holds the client-side domain state: the session, the
// roster snapshots, the message list, display preferences, and the task
// list. Each store owns its state exclusively and exposes derived views as
// pure functions of passed-in snapshots, so no store reads another's
// internals behind the caller's back.
package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dkovalenko/crewdesk/internal/client/api"
	"github.com/dkovalenko/crewdesk/internal/client/auth"
	"github.com/dkovalenko/crewdesk/internal/client/models"
	"github.com/dkovalenko/crewdesk/internal/client/storage"
	"github.com/dkovalenko/crewdesk/internal/dbx"
	"github.com/dkovalenko/crewdesk/internal/logging"
)

// State database keys. Identity and token are written together in one
// transaction: a session is either fully persisted or not at all.
const (
	keyIdentity = "identity"
	keyToken    = "token"
)

// SessionStore owns the authenticated identity and its token. Email
// matching is case-insensitive throughout (login, registration), applied
// as trim + lowercase normalization.
type SessionStore struct {
	api    api.Client
	db     *sql.DB
	tokens *auth.TokenIssuer
	log    logging.Logger

	mu    sync.RWMutex
	user  *models.User
	token string
}

func NewSessionStore(apiClient api.Client, db *sql.DB, tokens *auth.TokenIssuer, log logging.Logger) *SessionStore {
	return &SessionStore{
		api:    apiClient,
		db:     db,
		tokens: tokens,
		log:    log.With("component", "session"),
	}
}

// Current returns a copy of the authenticated identity, if any.
func (s *SessionStore) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return s.user.Clone(), true
}

// Token returns the session token, if a session exists.
func (s *SessionStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Restore loads a persisted session, if any. Missing or corrupt state, or a
// token that no longer validates against the stored identity, leaves the
// store logged out. Restore never fails: startup must reach a usable state
// regardless of what is on disk.
func (s *SessionStore) Restore(ctx context.Context) {
	repo := storage.NewSQLiteRepository(s.db)

	rawIdentity, err := repo.Get(ctx, keyIdentity)
	if err != nil {
		s.log.Warn(ctx, "failed to read saved session", "error", err)
		return
	}
	rawToken, err := repo.Get(ctx, keyToken)
	if err != nil {
		s.log.Warn(ctx, "failed to read saved session token", "error", err)
		return
	}
	if rawIdentity == nil || rawToken == nil {
		return
	}

	var u models.User
	if err := json.Unmarshal(rawIdentity, &u); err != nil {
		s.log.Warn(ctx, "discarding unreadable saved session", "error", err)
		return
	}

	token := string(rawToken)
	if id, err := s.tokens.UserID(token); err != nil || id != u.ID {
		s.log.Warn(ctx, "discarding saved session with stale token", "user_id", u.ID)
		return
	}

	s.mu.Lock()
	s.user = &u
	s.token = token
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "user_id", u.ID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login authenticates against the roster. The email is matched
// case-insensitively: the backend's exact filter is tried first with the
// normalized form, then the full roster is scanned, since the backend only
// filters on exact values. A missing user or a secret mismatch both return
// ErrInvalidCredentials, deliberately indistinguishable to the caller.
func (s *SessionStore) Login(ctx context.Context, email, password string) (models.User, error) {
	email = normalizeEmail(email)

	candidates, err := s.api.UsersByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	found := matchEmail(candidates, email)
	if found == nil {
		roster, err := s.api.Users(ctx)
		if err != nil {
			return models.User{}, fmt.Errorf("login: %w", err)
		}
		found = matchEmail(roster, email)
	}

	if found == nil || found.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	return s.establish(ctx, *found)
}

// Register creates a new roster identity and logs it in. The new identity
// gets the default role, empty memberships, a generated id, and a generated
// avatar reference; its email is stored in normalized form.
func (s *SessionStore) Register(ctx context.Context, name, email, password string) (models.User, error) {
	email = normalizeEmail(email)

	roster, err := s.api.Users(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	if matchEmail(roster, email) != nil {
		return models.User{}, &DuplicateEmailError{Email: email}
	}

	u := models.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Avatar:     "https://i.pravatar.cc/150?u=" + email,
		Position:   "Junior",
		Roles:      []models.Role{models.RoleUser},
		GroupIDs:   []string{},
		CompanyIDs: []string{},
		Password:   password,
	}

	created, err := s.api.CreateUser(ctx, u)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	return s.establish(ctx, created)
}

func matchEmail(users []models.User, normalized string) *models.User {
	for i := range users {
		if strings.EqualFold(users[i].Email, normalized) {
			return &users[i]
		}
	}
	return nil
}

// establish mints a fresh token, commits the session in memory, and
// persists it. Persistence failure does not fail the login; the session is
// simply not restorable after a restart.
func (s *SessionStore) establish(ctx context.Context, u models.User) (models.User, error) {
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("minting session token: %w", err)
	}

	clone := u.Clone()
	s.mu.Lock()
	s.user = &clone
	s.token = token
	s.mu.Unlock()

	s.persist(ctx, u, token)
	return u.Clone(), nil
}

func (s *SessionStore) persist(ctx context.Context, u models.User, token string) {
	raw, err := json.Marshal(u)
	if err != nil {
		s.log.Warn(ctx, "failed to encode session for persistence", "error", err)
		return
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyIdentity, raw); err != nil {
			return err
		}
		return repo.Set(ctx, keyToken, []byte(token))
	})
	if err != nil {
		s.log.Warn(ctx, "failed to persist session", "error", err)
	}
}

// Logout clears the session in memory and on disk. Calling it without a
// session is a no-op.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyIdentity); err != nil {
			return err
		}
		return repo.Delete(ctx, keyToken)
	})
	if err != nil {
		s.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
}

// UpdateProfile sends the fields present in patch to the backend and merges
// the canonical response into the session identity. Without a session, or
// with an empty patch, it does nothing. Only the profile fields of the
// patch are honored here; membership changes go through the directory.
func (s *SessionStore) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	s.mu.RLock()
	cur := s.user
	s.mu.RUnlock()
	if cur == nil {
		return nil
	}

	p := models.UserPatch{Name: patch.Name, Position: patch.Position, Password: patch.Password}
	if p.IsEmpty() {
		return nil
	}

	updated, err := s.api.UpdateUser(ctx, cur.ID, p)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}

	var merged models.User
	var token string
	s.mu.Lock()
	if s.user != nil && s.user.ID == updated.ID {
		merged = mergeCanonical(*s.user, updated)
		clone := merged.Clone()
		s.user = &clone
		token = s.token
	}
	s.mu.Unlock()

	if token != "" {
		s.persist(ctx, merged, token)
	}
	return nil
}

// mergeCanonical overlays the backend's canonical record onto the current
// identity. The canonical record is authoritative for every field it
// carries; the stored secret survives a response that omits it.
func mergeCanonical(cur, canonical models.User) models.User {
	merged := canonical.Clone()
	if merged.Password == "" {
		merged.Password = cur.Password
	}
	return merged
}
