package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Root runs the command loop until the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {
	fmt.Println("CrewDesk. Type 'help' for a list of commands.")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) getStatus() string {
	if user, ok := a.session.Current(); ok {
		return fmt.Sprintf("logged in as %s", user.Email)
	}
	return "not logged in"
}

// Refresh re-pulls every backend snapshot.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.refreshAll(ctx); err != nil {
		return err
	}
	fmt.Println("Snapshots refreshed.")
	return nil
}
