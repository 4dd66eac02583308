package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dkovalenko/crewdesk/internal/client/models"
)

func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.session.Current()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	fmt.Printf("%s <%s>\n", u.Name, u.Email)
	fmt.Printf("  position: %s\n", u.Position)
	fmt.Printf("  roles:    %s\n", strings.Join(roles, ", "))
	fmt.Printf("  groups:   %d\n", len(u.GroupIDs))
	return nil
}

// EditProfile prompts for new values; an empty answer leaves the field
// untouched, so only what the user typed ends up in the patch.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	position, err := getSimpleText(a.reader, "New position (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var patch models.UserPatch
	if name != "" {
		patch.Name = &name
	}
	if position != "" {
		patch.Position = &position
	}
	if patch.IsEmpty() {
		fmt.Println("Nothing to change.")
		return nil
	}

	if err := a.session.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}
