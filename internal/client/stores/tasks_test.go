package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalenko/crewdesk/internal/client/models"
)

func taskFixture() []models.Task {
	return []models.Task{
		{ID: "t1", Type: models.TaskTypeTask, Title: "Restock shelves", AssignedToID: "me"},
		{ID: "t2", Type: models.TaskTypeTask, Title: "Inventory count"},
		{ID: "t3", Type: models.TaskTypeTask, Title: "Restock freezer", AssignedToID: "other"},
		{ID: "s1", Type: models.TaskTypeShift, Title: "Morning shift"},
		{ID: "s2", Type: models.TaskTypeShift, Title: "Night shift"},
	}
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestFilterTasks_AssigneeAndSearch(t *testing.T) {
	me := models.User{ID: "me"}
	tasks := taskFixture()

	assert.Equal(t, []string{"t1", "t2"}, taskIDs(FilterTasks(me, tasks, "")))
	assert.Equal(t, []string{"t1"}, taskIDs(FilterTasks(me, tasks, "restock")))
	assert.Equal(t, []string{"t2"}, taskIDs(FilterTasks(me, tasks, "INVENTORY")))
}

func TestFilterTasks_LoggedOutSeesAll(t *testing.T) {
	got := FilterTasks(models.User{}, taskFixture(), "")
	assert.Equal(t, []string{"t1", "t2", "t3"}, taskIDs(got))
}

func TestFilterSchedule(t *testing.T) {
	tasks := taskFixture()

	assert.Equal(t, []string{"s1", "s2"}, taskIDs(FilterSchedule(tasks, "")))
	assert.Equal(t, []string{"s2"}, taskIDs(FilterSchedule(tasks, "night")))
}

func TestTaskStore_RefreshAndFailure(t *testing.T) {
	f := &fakeAPI{tasks: taskFixture()}
	s := NewTaskStore(f, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	assert.Len(t, s.Tasks(), 5)

	f.tasksErr = assert.AnError
	require.Error(t, s.Refresh(ctx))
	assert.Len(t, s.Tasks(), 5, "previous snapshot retained")
	assert.False(t, s.Loading())
}
