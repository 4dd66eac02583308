package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkovalenko/crewdesk/internal/client/models"
)

// Tasks lists the assignable tasks visible to the logged-in identity,
// optionally filtered by a search string.
func (a *App) Tasks(ctx context.Context) error {
	me, _ := a.session.Current()

	search, err := getSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	tasks := a.tasks.FilterTasks(me, search)
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, t := range tasks {
		status := string(t.Status)
		if status == "" {
			status = "-"
		}
		fmt.Printf("%-12s %-30s %s\n", status, t.Title, t.Description)
	}
	return nil
}

// Schedule lists the shift entries.
func (a *App) Schedule(ctx context.Context) error {
	search, err := getSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	shifts := a.tasks.FilterSchedule(search)
	if len(shifts) == 0 {
		fmt.Println("No shifts.")
		return nil
	}
	for _, s := range shifts {
		fmt.Printf("%-30s %s\n", s.Title, shiftWindow(s))
	}
	return nil
}

func shiftWindow(s models.Task) string {
	if s.StartTime == nil || s.EndTime == nil {
		return ""
	}
	return fmt.Sprintf("%s - %s",
		s.StartTime.Local().Format("Mon 15:04"),
		s.EndTime.Local().Format("15:04"))
}
