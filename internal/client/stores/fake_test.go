package stores

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkovalenko/crewdesk/internal/client/models"
	"github.com/dkovalenko/crewdesk/internal/client/storage"
	"github.com/dkovalenko/crewdesk/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// fakeAPI is an in-memory stand-in for the backend with per-call error
// injection. Collection semantics mirror a generic CRUD store: exact email
// filter, create returns the stored record, patch merges supplied fields.
type fakeAPI struct {
	mu       sync.Mutex
	users    []models.User
	groups   []models.Group
	messages []models.Message
	tasks    []models.Task

	usersErr         error
	groupsErr        error
	messagesErr      error
	tasksErr         error
	createUserErr    error
	updateUserErr    error
	createMessageErr error

	updateCalls int
}

func (f *fakeAPI) Users(context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	out := make([]models.User, len(f.users))
	for i, u := range f.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (f *fakeAPI) UsersByEmail(_ context.Context, email string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	out := make([]models.User, 0)
	for _, u := range f.users {
		if u.Email == email {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateUser(_ context.Context, u models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createUserErr != nil {
		return models.User{}, f.createUserErr
	}
	f.users = append(f.users, u.Clone())
	return u, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id string, patch models.UserPatch) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateUserErr != nil {
		return models.User{}, f.updateUserErr
	}
	for i := range f.users {
		if f.users[i].ID != id {
			continue
		}
		u := &f.users[i]
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Position != nil {
			u.Position = *patch.Position
		}
		if patch.Password != nil {
			u.Password = *patch.Password
		}
		if patch.GroupIDs != nil {
			u.GroupIDs = append([]string(nil), patch.GroupIDs...)
		}
		if patch.CompanyIDs != nil {
			u.CompanyIDs = append([]string(nil), patch.CompanyIDs...)
		}
		return u.Clone(), nil
	}
	return models.User{}, &UserNotFoundError{Email: id}
}

func (f *fakeAPI) Groups(context.Context) ([]models.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.groupsErr != nil {
		return nil, f.groupsErr
	}
	return append([]models.Group(nil), f.groups...), nil
}

func (f *fakeAPI) Messages(context.Context) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.messagesErr != nil {
		return nil, f.messagesErr
	}
	return append([]models.Message(nil), f.messages...), nil
}

func (f *fakeAPI) CreateMessage(_ context.Context, m models.Message) (models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createMessageErr != nil {
		return models.Message{}, f.createMessageErr
	}
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeAPI) Tasks(context.Context) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tasksErr != nil {
		return nil, f.tasksErr
	}
	return append([]models.Task(nil), f.tasks...), nil
}
