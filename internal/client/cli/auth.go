package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkovalenko/crewdesk/internal/client/stores"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing; they point at the interactive input helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, and password, and creates an account.
// A duplicate email is reported to the user, not returned as a failure of
// the prompt loop.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.session.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, stores.ErrDuplicateEmail) {
			fmt.Println("That email is already registered.")
			return nil
		}
		return err
	}

	fmt.Printf("Welcome, %s!\n", u.Name)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, stores.ErrInvalidCredentials) {
			fmt.Println("Invalid email or password.")
			return nil
		}
		return err
	}

	fmt.Printf("Logged in as %s.\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.conversations.SetActive("")
	fmt.Println("Logged out.")
	return nil
}
