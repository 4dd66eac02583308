package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkovalenko/crewdesk/internal/client/stores"
)

// Groups lists the groups visible to the logged-in identity, with the
// resolved manager name and member count.
func (a *App) Groups(ctx context.Context) error {
	me, ok := a.session.Current()
	if !ok {
		fmt.Println("Log in first.")
		return nil
	}

	visible := a.directory.VisibleGroups(me)
	if len(visible) == 0 {
		fmt.Println("No groups visible.")
		return nil
	}

	for _, g := range visible {
		manager := a.directory.ManagerName(g)
		if manager == "" {
			manager = "-"
		}
		fmt.Printf("%s  %-20s manager: %-12s members: %d\n",
			g.ID, g.Name, manager, len(a.directory.Members(g.ID)))
	}
	return nil
}

// Members lists the users belonging to a group.
func (a *App) Members(ctx context.Context) error {
	groupID, err := getSimpleText(a.reader, "Group id", os.Stdout)
	if err != nil {
		return err
	}

	members := a.directory.Members(groupID)
	if len(members) == 0 {
		fmt.Println("No members.")
		return nil
	}
	for _, u := range members {
		fmt.Printf("%s <%s>\n", u.Name, u.Email)
	}
	return nil
}

// AddMember adds a user (by email) to a group (by id).
func (a *App) AddMember(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "User email", os.Stdout)
	if err != nil {
		return err
	}
	groupID, err := getSimpleText(a.reader, "Group id", os.Stdout)
	if err != nil {
		return err
	}

	err = a.directory.AddUserToGroup(ctx, email, groupID)
	switch {
	case errors.Is(err, stores.ErrUserNotFound):
		fmt.Println("No user with that email.")
		return nil
	case errors.Is(err, stores.ErrGroupNotFound):
		fmt.Println("No group with that id.")
		return nil
	case err != nil:
		return err
	}

	fmt.Println("Done.")
	return nil
}
