package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn bool
	calls    []string
	err      error
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return s.err
}

func (s *stubExec) isLoggedIn() bool                      { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error    { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error       { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error      { return s.record("logout") }
func (s *stubExec) Whoami(ctx context.Context) error      { return s.record("whoami") }
func (s *stubExec) EditProfile(ctx context.Context) error { return s.record("profile") }
func (s *stubExec) Refresh(ctx context.Context) error     { return s.record("refresh") }
func (s *stubExec) Groups(ctx context.Context) error      { return s.record("groups") }
func (s *stubExec) Members(ctx context.Context) error     { return s.record("members") }
func (s *stubExec) AddMember(ctx context.Context) error   { return s.record("addmember") }
func (s *stubExec) Chats(ctx context.Context) error       { return s.record("chats") }
func (s *stubExec) Chat(ctx context.Context) error        { return s.record("chat") }
func (s *stubExec) Send(ctx context.Context) error        { return s.record("send") }
func (s *stubExec) Tasks(ctx context.Context) error       { return s.record("tasks") }
func (s *stubExec) Schedule(ctx context.Context) error    { return s.record("schedule") }
func (s *stubExec) Prefs(ctx context.Context) error       { return s.record("prefs") }
func (s *stubExec) ToggleDark(ctx context.Context) error  { return s.record("dark") }
func (s *stubExec) SetFont(ctx context.Context) error     { return s.record("font") }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runInput(a execIface, input string) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), a, func() string { return "status" }, scanner)
}

func TestREPLDispatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"register\n", "register"},
		{"login\n", "login"},
		{"logout\n", "logout"},
		{"whoami\n", "whoami"},
		{"profile\n", "profile"},
		{"refresh\n", "refresh"},
		{"groups\n", "groups"},
		{"members\n", "members"},
		{"addmember\n", "addmember"},
		{"chats\n", "chats"},
		{"chat\n", "chat"},
		{"send\n", "send"},
		{"tasks\n", "tasks"},
		{"schedule\n", "schedule"},
		{"prefs\n", "prefs"},
		{"dark\n", "dark"},
		{"font\n", "font"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			capturePrintln(t)
			s := &stubExec{}
			runInput(s, tt.input)
			assert.Equal(t, []string{tt.want}, s.calls)
		})
	}
}

func TestREPLExit(t *testing.T) {
	lines := capturePrintln(t)
	s := &stubExec{}
	runInput(s, "exit\nwhoami\n")
	assert.Empty(t, s.calls)
	assert.Contains(t, *lines, "Bye!")
}

func TestREPLQuit(t *testing.T) {
	capturePrintln(t)
	s := &stubExec{}
	runInput(s, "quit\n")
	assert.Empty(t, s.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	lines := capturePrintln(t)
	s := &stubExec{}
	runInput(s, "frobnicate\n")
	assert.Empty(t, s.calls)

	var found bool
	for _, l := range *lines {
		if strings.HasPrefix(l, "Unknown command:") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestREPLBlankLineIgnored(t *testing.T) {
	capturePrintln(t)
	s := &stubExec{}
	runInput(s, "\n   \nwhoami\n")
	assert.Equal(t, []string{"whoami"}, s.calls)
}

func TestREPLHandlerErrorKeepsLooping(t *testing.T) {
	lines := capturePrintln(t)
	s := &stubExec{err: errors.New("boom")}
	runInput(s, "whoami\ngroups\n")
	assert.Equal(t, []string{"whoami", "groups"}, s.calls)

	var errCount int
	for _, l := range *lines {
		if strings.HasPrefix(l, "Error:") {
			errCount++
		}
	}
	assert.Equal(t, 2, errCount)
}

func TestREPLHelpVariesByState(t *testing.T) {
	lines := capturePrintln(t)
	runInput(&stubExec{loggedIn: false}, "help\n")
	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "register")
	assert.NotContains(t, joined, "logout")

	lines2 := capturePrintln(t)
	runInput(&stubExec{loggedIn: true}, "help\n")
	joined2 := strings.Join(*lines2, "\n")
	assert.Contains(t, joined2, "logout")
}

func TestREPLEOF(t *testing.T) {
	capturePrintln(t)
	s := &stubExec{}
	runInput(s, "")
	assert.Empty(t, s.calls)
}
