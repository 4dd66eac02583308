package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. The App
// type satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Refresh(ctx context.Context) error
	Groups(ctx context.Context) error
	Members(ctx context.Context) error
	AddMember(ctx context.Context) error
	Chats(ctx context.Context) error
	Chat(ctx context.Context) error
	Send(ctx context.Context) error
	Tasks(ctx context.Context) error
	Schedule(ctx context.Context) error
	Prefs(ctx context.Context) error
	ToggleDark(ctx context.Context) error
	SetFont(ctx context.Context) error
}

// runREPL reads a command per line and dispatches to a. Unknown commands
// are reported; handler errors are printed and the loop keeps going. Exits
// on scanner EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("crewdesk> %s", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Commands: whoami, profile, refresh, groups, members, addmember,")
				printlnFn("          chats, chat, send, tasks, schedule, prefs, dark, font,")
				printlnFn("          logout, exit")
			} else {
				printlnFn("Commands: register, login, prefs, dark, font, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)
		case "profile":
			err = a.EditProfile(ctx)

		case "refresh":
			err = a.Refresh(ctx)
		case "groups":
			err = a.Groups(ctx)
		case "members":
			err = a.Members(ctx)
		case "addmember":
			err = a.AddMember(ctx)

		case "chats":
			err = a.Chats(ctx)
		case "chat":
			err = a.Chat(ctx)
		case "send":
			err = a.Send(ctx)

		case "tasks":
			err = a.Tasks(ctx)
		case "schedule":
			err = a.Schedule(ctx)

		case "prefs":
			err = a.Prefs(ctx)
		case "dark":
			err = a.ToggleDark(ctx)
		case "font":
			err = a.SetFont(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
