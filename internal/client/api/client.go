// Package api wraps the workforce backend's REST collection interface.
// The backend is a generic CRUD store (json-server semantics): list with
// filter, create, and partial update. Stores depend on the Client interface
// so tests can substitute fakes.
package api

import (
	"context"

	"github.com/dkovalenko/crewdesk/internal/client/models"
)

// Client is the remote collection interface the stores consume.
//
// Contract:
//   - list calls return the full collection snapshot;
//   - UsersByEmail applies the backend's exact-match email filter;
//   - create calls return the canonical created record;
//   - UpdateUser sends only the fields present in the patch and returns the
//     full updated record.
//
// All methods honor context cancellation and surface transport problems as
// errors matching ErrUnavailable.
type Client interface {
	Users(ctx context.Context) ([]models.User, error)
	UsersByEmail(ctx context.Context, email string) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error)

	Groups(ctx context.Context) ([]models.Group, error)

	Messages(ctx context.Context) ([]models.Message, error)
	CreateMessage(ctx context.Context, m models.Message) (models.Message, error)

	Tasks(ctx context.Context) ([]models.Task, error)
}
