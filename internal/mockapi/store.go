// Package mockapi is an in-memory stand-in for the hosted users API. It
// speaks the same REST contract (string ids, RFC 3339 createdAt, "Not found"
// bodies on 404) and is used by tests and by cmd/mockapi for local runs.
package mockapi

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/userlist/internal/client/models"
)

var ErrNotFound = errors.New("not found")

// Store keeps users in insertion order and hands out sequential ids.
type Store struct {
	mu     sync.Mutex
	users  []models.User
	nextID int
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{nextID: 1, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock replaces the time source used for createdAt.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *Store) List() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Create(name string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{
		ID:        strconv.Itoa(s.nextID),
		Name:      name,
		CreatedAt: s.now().Truncate(time.Millisecond),
	}
	s.nextID++
	s.users = append(s.users, u)
	return u
}

func (s *Store) Get(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	return s.users[i], nil
}

func (s *Store) Update(id, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	s.users[i].Name = name
	return s.users[i], nil
}

func (s *Store) Delete(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	u := s.users[i]
	s.users = append(s.users[:i], s.users[i+1:]...)
	return u, nil
}

// Seed creates one user per name, in order.
func (s *Store) Seed(names ...string) []models.User {
	created := make([]models.User, 0, len(names))
	for _, n := range names {
		created = append(created, s.Create(n))
	}
	return created
}

func (s *Store) indexOf(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
