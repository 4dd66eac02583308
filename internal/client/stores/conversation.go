package stores

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkovalenko/crewdesk/internal/client/api"
	"github.com/dkovalenko/crewdesk/internal/client/models"
	"github.com/dkovalenko/crewdesk/internal/logging"
)

// ConversationStore owns the message snapshot and is the only writer of new
// messages. A conversation is derived per read: the messages exchanged
// between exactly two users in either direction, ascending by timestamp.
type ConversationStore struct {
	api api.Client
	log logging.Logger

	mu       sync.RWMutex
	messages []models.Message
	loading  bool
	activeID string
}

func NewConversationStore(apiClient api.Client, log logging.Logger) *ConversationStore {
	return &ConversationStore{
		api: apiClient,
		log: log.With("component", "conversations"),
	}
}

// Refresh replaces the message snapshot with the backend's full list. On
// failure the previous snapshot is kept.
func (c *ConversationStore) Refresh(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	messages, err := c.api.Messages(ctx)
	if err != nil {
		return fmt.Errorf("refreshing messages: %w", err)
	}

	c.mu.Lock()
	c.messages = messages
	c.mu.Unlock()
	return nil
}

func (c *ConversationStore) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *ConversationStore) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Messages returns a copy of the snapshot in arrival order.
func (c *ConversationStore) Messages() []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Send submits a new message from the given sender. The sender identity is
// passed explicitly; without one (no session) the call is a no-op. The
// backend's canonical message is appended to the snapshot only after the
// call succeeds, so a failed send leaves the list untouched.
func (c *ConversationStore) Send(ctx context.Context, sender models.User, toUserID, text string) (models.Message, error) {
	if sender.ID == "" {
		return models.Message{}, nil
	}

	m := models.Message{
		ID:         uuid.NewString(),
		FromUserID: sender.ID,
		ToUserID:   toUserID,
		Text:       text,
		Timestamp:  time.Now().UTC(),
	}

	created, err := c.api.CreateMessage(ctx, m)
	if err != nil {
		return models.Message{}, fmt.Errorf("sending message: %w", err)
	}

	c.mu.Lock()
	c.messages = append(c.messages, created)
	c.mu.Unlock()
	return created, nil
}

// Conversation returns the ordered conversation between the two users,
// computed from the current snapshot.
func (c *ConversationStore) Conversation(meID, otherID string) []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Conversation(meID, otherID, c.messages)
}

// SetActive records which counterpart is currently focused. An empty id
// clears the explicit choice, falling back to the first eligible coworker.
func (c *ConversationStore) SetActive(userID string) {
	c.mu.Lock()
	c.activeID = userID
	c.mu.Unlock()
}

// Active resolves the focused counterpart against the given coworkers:
// the explicitly chosen one if still eligible, otherwise the first
// coworker. Returns false when there is nobody to talk to.
func (c *ConversationStore) Active(coworkers []models.User) (models.User, bool) {
	c.mu.RLock()
	activeID := c.activeID
	c.mu.RUnlock()

	if activeID != "" {
		for _, u := range coworkers {
			if u.ID == activeID {
				return u, true
			}
		}
	}
	if len(coworkers) > 0 {
		return coworkers[0], true
	}
	return models.User{}, false
}

// Conversation filters messages down to the pair {a, b} and sorts them
// ascending by timestamp. The sort is stable: messages with equal
// timestamps keep their snapshot (arrival) order, as no secondary key is
// defined. Symmetric in its two id arguments.
func Conversation(a, b string, messages []models.Message) []models.Message {
	conv := make([]models.Message, 0)
	for _, m := range messages {
		if m.InConversation(a, b) {
			conv = append(conv, m)
		}
	}
	sort.SliceStable(conv, func(i, j int) bool {
		return conv[i].Timestamp.Before(conv[j].Timestamp)
	})
	return conv
}
