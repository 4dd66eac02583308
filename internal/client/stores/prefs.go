package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/dkovalenko/crewdesk/internal/client/models"
	"github.com/dkovalenko/crewdesk/internal/client/storage"
	"github.com/dkovalenko/crewdesk/internal/logging"
)

const keyPreferences = "prefs"

// PrefsStore owns the display preferences. Preferences are best-effort:
// every change is observable in memory immediately and persisted in the
// background of the caller's view; a failed save is logged, never surfaced.
type PrefsStore struct {
	db  *sql.DB
	log logging.Logger

	mu    sync.RWMutex
	prefs models.Preferences
}

func NewPrefsStore(db *sql.DB, log logging.Logger) *PrefsStore {
	return &PrefsStore{
		db:    db,
		log:   log.With("component", "prefs"),
		prefs: models.DefaultPreferences(),
	}
}

// Restore loads persisted preferences. Absent or malformed state falls back
// to the defaults; a blob carrying only some fields overlays just those.
func (p *PrefsStore) Restore(ctx context.Context) {
	repo := storage.NewSQLiteRepository(p.db)

	raw, err := repo.Get(ctx, keyPreferences)
	if err != nil {
		p.log.Warn(ctx, "failed to read saved preferences", "error", err)
		return
	}
	if raw == nil {
		return
	}

	prefs := models.DefaultPreferences()
	if err := json.Unmarshal(raw, &prefs); err != nil {
		p.log.Warn(ctx, "discarding unreadable saved preferences", "error", err)
		return
	}
	if !prefs.FontSize.Valid() {
		prefs.FontSize = models.FontSizeNormal
	}

	p.mu.Lock()
	p.prefs = prefs
	p.mu.Unlock()
}

func (p *PrefsStore) Current() models.Preferences {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.prefs
}

// Scale applies the current font preference to a base size.
func (p *PrefsStore) Scale(base float64) float64 {
	return p.Current().Scale(base)
}

func (p *PrefsStore) SetDarkMode(ctx context.Context, value bool) {
	p.mu.Lock()
	p.prefs.DarkMode = value
	prefs := p.prefs
	p.mu.Unlock()

	p.persist(ctx, prefs)
}

func (p *PrefsStore) SetFontSize(ctx context.Context, value models.FontSize) {
	if !value.Valid() {
		p.log.Warn(ctx, "ignoring unknown font size", "value", string(value))
		return
	}

	p.mu.Lock()
	p.prefs.FontSize = value
	prefs := p.prefs
	p.mu.Unlock()

	p.persist(ctx, prefs)
}

func (p *PrefsStore) persist(ctx context.Context, prefs models.Preferences) {
	raw, err := json.Marshal(prefs)
	if err != nil {
		p.log.Warn(ctx, "failed to encode preferences", "error", err)
		return
	}

	repo := storage.NewSQLiteRepository(p.db)
	if err := repo.Set(ctx, keyPreferences, raw); err != nil {
		p.log.Warn(ctx, "failed to persist preferences", "error", err)
	}
}
