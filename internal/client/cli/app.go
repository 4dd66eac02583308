// Package cli is the interactive front end and the composition root: every
// store is constructed exactly once here and handed its collaborators
// explicitly, so nothing in the program reaches for ambient shared state.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dkovalenko/crewdesk/internal/client/api"
	"github.com/dkovalenko/crewdesk/internal/client/auth"
	"github.com/dkovalenko/crewdesk/internal/client/config"
	"github.com/dkovalenko/crewdesk/internal/client/storage"
	"github.com/dkovalenko/crewdesk/internal/client/stores"
	"github.com/dkovalenko/crewdesk/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session       *stores.SessionStore
	directory     *stores.DirectoryStore
	conversations *stores.ConversationStore
	prefs         *stores.PrefsStore
	tasks         *stores.TaskStore

	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local state: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	issuer := auth.NewTokenIssuer([]byte(cfg.TokenSecret), cfg.TokenValidity)

	return &App{
		config:        cfg,
		log:           log,
		db:            db,
		session:       stores.NewSessionStore(apiClient, db, issuer, log),
		directory:     stores.NewDirectoryStore(apiClient, log),
		conversations: stores.NewConversationStore(apiClient, log),
		prefs:         stores.NewPrefsStore(db, log),
		tasks:         stores.NewTaskStore(apiClient, log),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

// Run restores persisted state, pulls initial snapshots, and drops into the
// REPL. Restore and refresh failures never stop startup; the snapshots stay
// empty until the next refresh.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	a.prefs.Restore(ctx)

	if err := a.refreshAll(ctx); err != nil {
		a.log.Warn(ctx, "initial refresh failed", "error", err)
		fmt.Println("Backend not reachable, working with empty snapshots. Use 'refresh' to retry.")
	}

	a.Root(ctx)
}

func (a *App) refreshAll(ctx context.Context) error {
	if err := a.directory.Refresh(ctx); err != nil {
		return err
	}
	if err := a.conversations.Refresh(ctx); err != nil {
		return err
	}
	return a.tasks.Refresh(ctx)
}
