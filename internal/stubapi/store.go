// Package stubapi is a small stand-in for the workforce backend: a generic
// CRUD store over in-memory collections with the same REST surface the
// client consumes. It backs local development (cmd/stubapi) and the HTTP
// client tests.
package stubapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dkovalenko/crewdesk/internal/client/models"
)

var ErrNotFound = errors.New("record not found")

// Seed is the JSON shape accepted by LoadSeed, mirroring a json-server
// database file.
type Seed struct {
	Users    []models.User    `json:"users"`
	Groups   []models.Group   `json:"groups"`
	Messages []models.Message `json:"messages"`
	Tasks    []models.Task    `json:"tasks"`
}

// Store holds the collections behind one mutex. Handlers are the only
// callers, so contention is not a concern.
type Store struct {
	mu       sync.RWMutex
	users    []models.User
	groups   []models.Group
	messages []models.Message
	tasks    []models.Task
}

func NewStore() *Store {
	return &Store{}
}

// LoadSeed replaces the collections with the contents of a seed file.
func (s *Store) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}

	s.mu.Lock()
	s.users = seed.Users
	s.groups = seed.Groups
	s.messages = seed.Messages
	s.tasks = seed.Tasks
	s.mu.Unlock()
	return nil
}

// Users lists the user collection, optionally filtered by exact email —
// the same filter semantics a generic collection store applies.
func (s *Store) Users(email string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if email == "" || u.Email == email {
			out = append(out, u)
		}
	}
	return out
}

func (s *Store) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
	return u
}

// PatchUser merge-patches the stored record: unmarshalling the request body
// over a copy of the existing struct touches only the fields the body
// carries.
func (s *Store) PatchUser(id string, body []byte) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		patched := s.users[i].Clone()
		if err := json.Unmarshal(body, &patched); err != nil {
			return models.User{}, fmt.Errorf("parsing patch: %w", err)
		}
		patched.ID = id
		s.users[i] = patched
		return patched, nil
	}
	return models.User{}, ErrNotFound
}

func (s *Store) Groups() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Group(nil), s.groups...)
}

func (s *Store) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Message(nil), s.messages...)
}

func (s *Store) CreateMessage(m models.Message) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
	return m
}

func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}
