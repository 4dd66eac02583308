package stores

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dkovalenko/crewdesk/internal/client/api"
	"github.com/dkovalenko/crewdesk/internal/client/models"
	"github.com/dkovalenko/crewdesk/internal/logging"
)

// TaskStore owns the task/shift snapshot. Tasks and schedule entries share
// one backend collection and are told apart by their type.
type TaskStore struct {
	api api.Client
	log logging.Logger

	mu      sync.RWMutex
	tasks   []models.Task
	loading bool
}

func NewTaskStore(apiClient api.Client, log logging.Logger) *TaskStore {
	return &TaskStore{
		api: apiClient,
		log: log.With("component", "tasks"),
	}
}

// Refresh replaces the snapshot with the backend's full task list, keeping
// the previous one on failure.
func (t *TaskStore) Refresh(ctx context.Context) error {
	t.setLoading(true)
	defer t.setLoading(false)

	tasks, err := t.api.Tasks(ctx)
	if err != nil {
		return fmt.Errorf("refreshing tasks: %w", err)
	}

	t.mu.Lock()
	t.tasks = tasks
	t.mu.Unlock()
	return nil
}

func (t *TaskStore) setLoading(v bool) {
	t.mu.Lock()
	t.loading = v
	t.mu.Unlock()
}

func (t *TaskStore) Loading() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.loading
}

func (t *TaskStore) Tasks() []models.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// FilterTasks returns the assignable tasks visible to me: unassigned ones
// plus those assigned to me, title-filtered by the search string.
func (t *TaskStore) FilterTasks(me models.User, search string) []models.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return FilterTasks(me, t.tasks, search)
}

// FilterSchedule returns the shift entries, title-filtered by search.
func (t *TaskStore) FilterSchedule(search string) []models.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return FilterSchedule(t.tasks, search)
}

func titleMatches(title, search string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(search))
}

// FilterTasks is the pure derivation behind TaskStore.FilterTasks. An
// identity without an id (logged out) sees every task.
func FilterTasks(me models.User, tasks []models.Task, search string) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range tasks {
		if t.Type != models.TaskTypeTask {
			continue
		}
		if me.ID != "" && t.AssignedToID != "" && t.AssignedToID != me.ID {
			continue
		}
		if !titleMatches(t.Title, search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterSchedule is the pure derivation behind TaskStore.FilterSchedule.
func FilterSchedule(tasks []models.Task, search string) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range tasks {
		if t.Type != models.TaskTypeShift {
			continue
		}
		if !titleMatches(t.Title, search) {
			continue
		}
		out = append(out, t)
	}
	return out
}
