// Package services contains application services for the users screen.
// UserListSync mirrors the remote users collection in memory and applies
// create/update/delete results only after the remote store confirms them.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userlist/internal/client/client"
	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/client/notify"
	"github.com/dmitrijs2005/userlist/internal/logging"
)

// User-facing outcome messages.
const (
	MsgLoadFailed   = "Error fetching users"
	MsgEmptyName    = "User name cannot be empty."
	MsgAdded        = "User added successfully"
	MsgAddFailed    = "Error adding user"
	MsgDeleted      = "User deleted successfully"
	MsgDeleteFailed = "Error deleting user"
	MsgUpdated      = "User updated successfully"
	MsgUpdateFailed = "Error updating user"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrNoActiveEdit = errors.New("no record is being edited")
)

// ValidationError is returned for input rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// EditSession tracks the record being renamed. The zero value is Idle.
type EditSession struct {
	Editing   bool
	ActiveID  string
	DraftName string
}

// UserService is the surface the CLI drives.
type UserService interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, id string) error
	Update(ctx context.Context, id string, newName string) error
	SaveEdit(ctx context.Context) error
	BeginEdit(id string, currentName string)
	CancelEdit()
	SetEditDraft(name string)
	SetDraft(name string)
	Draft() string
	Edit() EditSession
	Users() []models.User
	Find(id string) (models.User, bool)
}

// UserListSync owns the local collection and the edit session. Every
// operation does at most one round trip and reports its outcome to the sink.
// The lock is never held across a network call, so overlapping operations
// apply their results in the order the responses arrive.
type UserListSync struct {
	remote client.Client
	sink   notify.Sink
	log    logging.Logger

	mu    sync.Mutex
	users []models.User
	edit  EditSession
	draft string
}

func NewUserListSync(remote client.Client, sink notify.Sink, log logging.Logger) *UserListSync {
	return &UserListSync{
		remote: remote,
		sink:   sink,
		log:    log.With("component", "user_list_sync"),
		users:  []models.User{},
	}
}

// Load replaces the collection with the server's, in server order. On
// failure the collection is left untouched.
func (s *UserListSync) Load(ctx context.Context) error {
	users, err := s.remote.List(ctx)
	if err != nil {
		return s.fail(ctx, "load", MsgLoadFailed, err)
	}

	s.mu.Lock()
	s.users = append(make([]models.User, 0, len(users)), users...)
	s.mu.Unlock()

	s.log.Info(ctx, "users loaded", "count", len(users))
	return nil
}

// Add creates a user and appends the server's record. Blank names are
// rejected locally without a network call.
func (s *UserListSync) Add(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		err := &ValidationError{Field: "name", Reason: "must not be empty"}
		s.log.Warn(ctx, "add rejected", "err", err)
		s.sink.Notify(MsgEmptyName, notify.Error)
		return err
	}

	u, err := s.remote.Create(ctx, name)
	if err != nil {
		return s.fail(ctx, "add", MsgAddFailed, err)
	}

	s.mu.Lock()
	s.users = append(s.users, u)
	s.draft = ""
	s.mu.Unlock()

	s.log.Info(ctx, "user added", "id", u.ID)
	s.sink.Notify(MsgAdded, notify.Success)
	return nil
}

// Remove deletes id remotely and drops it locally. An id missing from the
// local collection is not an error.
func (s *UserListSync) Remove(ctx context.Context, id string) error {
	if err := s.remote.Delete(ctx, id); err != nil {
		return s.fail(ctx, "remove", MsgDeleteFailed, err)
	}

	s.mu.Lock()
	kept := s.users[:0:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	s.mu.Unlock()

	s.log.Info(ctx, "user deleted", "id", id)
	s.sink.Notify(MsgDeleted, notify.Success)
	return nil
}

// Update renames id remotely, swaps the server's record in at the same
// position and ends the edit session. On failure the session stays open.
func (s *UserListSync) Update(ctx context.Context, id string, newName string) error {
	u, err := s.remote.Update(ctx, id, newName)
	if err != nil {
		return s.fail(ctx, "update", MsgUpdateFailed, err)
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = u
		}
	}
	s.edit = EditSession{}
	s.mu.Unlock()

	s.log.Info(ctx, "user updated", "id", id)
	s.sink.Notify(MsgUpdated, notify.Success)
	return nil
}

// SaveEdit submits the active edit session's draft.
func (s *UserListSync) SaveEdit(ctx context.Context) error {
	edit := s.Edit()
	if !edit.Editing {
		return ErrNoActiveEdit
	}
	return s.Update(ctx, edit.ActiveID, edit.DraftName)
}

// BeginEdit puts id in edit mode with currentName as the draft. Switching to
// another record discards the previous draft.
func (s *UserListSync) BeginEdit(id string, currentName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit = EditSession{Editing: true, ActiveID: id, DraftName: currentName}
}

func (s *UserListSync) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit = EditSession{}
}

// SetEditDraft changes the draft name; it is ignored while Idle.
func (s *UserListSync) SetEditDraft(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.edit.Editing {
		s.edit.DraftName = name
	}
}

func (s *UserListSync) SetDraft(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = name
}

func (s *UserListSync) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *UserListSync) Edit() EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edit
}

// Users returns a copy of the collection in display order.
func (s *UserListSync) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserListSync) Find(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *UserListSync) fail(ctx context.Context, op, message string, err error) error {
	args := []any{"op", op, "err", err}
	var te *client.TransportError
	if errors.As(err, &te) {
		args = append(args, "method", te.Method, "path", te.Path, "status", te.Status, "request_id", te.RequestID)
	}
	s.log.Error(ctx, "operation failed", args...)
	s.sink.Notify(message, notify.Error)
	return err
}
