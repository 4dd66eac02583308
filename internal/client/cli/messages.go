package cli

import (
	"context"
	"fmt"
	"os"
)

// Chats lists the coworkers available to talk to, marking the active one.
func (a *App) Chats(ctx context.Context) error {
	me, ok := a.session.Current()
	if !ok {
		fmt.Println("Log in first.")
		return nil
	}

	coworkers := a.directory.Coworkers(me)
	if len(coworkers) == 0 {
		fmt.Println("No coworkers share a group with you yet.")
		return nil
	}

	active, _ := a.conversations.Active(coworkers)
	for _, u := range coworkers {
		marker := " "
		if u.ID == active.ID {
			marker = "*"
		}
		fmt.Printf("%s %s <%s>\n", marker, u.Name, u.Email)
	}
	return nil
}

// Chat switches the active conversation to the coworker with the given
// email and prints it.
func (a *App) Chat(ctx context.Context) error {
	me, ok := a.session.Current()
	if !ok {
		fmt.Println("Log in first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Coworker email", os.Stdout)
	if err != nil {
		return err
	}

	coworkers := a.directory.Coworkers(me)
	for _, u := range coworkers {
		if u.Email == email {
			a.conversations.SetActive(u.ID)
			return a.printConversation(me.ID, u.ID, u.Name)
		}
	}
	fmt.Println("No such coworker.")
	return nil
}

// Send posts a message to the active conversation.
func (a *App) Send(ctx context.Context) error {
	me, ok := a.session.Current()
	if !ok {
		fmt.Println("Log in first.")
		return nil
	}

	active, ok := a.conversations.Active(a.directory.Coworkers(me))
	if !ok {
		fmt.Println("Nobody to send to; use 'chat' to pick a coworker.")
		return nil
	}

	text, err := getSimpleText(a.reader, fmt.Sprintf("Message to %s", active.Name), os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	if _, err := a.conversations.Send(ctx, me, active.ID, text); err != nil {
		return err
	}
	return a.printConversation(me.ID, active.ID, active.Name)
}

func (a *App) printConversation(meID, otherID, otherName string) error {
	conv := a.conversations.Conversation(meID, otherID)
	if len(conv) == 0 {
		fmt.Println("No messages yet.")
		return nil
	}

	for _, m := range conv {
		who := otherName
		if m.FromUserID == meID {
			who = "me"
		}
		fmt.Printf("[%s] %s: %s\n", m.Timestamp.Local().Format("15:04"), who, m.Text)
	}
	return nil
}
