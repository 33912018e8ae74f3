// Package models defines the client-side user record and its wire schema.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// JoinedLayout is the date format used when a record is shown to the user.
const JoinedLayout = "2006-01-02"

var ErrDecode = errors.New("decode error")

// DecodeError reports a response body that does not match the user schema.
// Field is empty when the body as a whole has the wrong shape.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode user: %v", e.Err)
	}
	return fmt.Sprintf("decode user field %q: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// User is a record of the remote users collection. ID and CreatedAt are
// assigned by the server.
type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type userWire struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func (u User) MarshalJSON() ([]byte, error) {
	w := userWire{ID: u.ID, Name: u.Name}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		w.CreatedAt = &createdAt
	}
	return json.Marshal(w)
}

// UnmarshalJSON requires "id" and "name" to be present JSON strings.
// "createdAt" may be absent or null; otherwise it must be an RFC 3339 string.
// Unknown fields are ignored.
func (u *User) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return &DecodeError{Err: err}
	}

	id, err := requiredString(raw, "id")
	if err != nil {
		return err
	}
	name, err := requiredString(raw, "name")
	if err != nil {
		return err
	}

	var createdAt time.Time
	if v, ok := raw["createdAt"]; ok && string(v) != "null" {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return &DecodeError{Field: "createdAt", Err: err}
		}
		if createdAt, err = time.Parse(time.RFC3339, s); err != nil {
			return &DecodeError{Field: "createdAt", Err: err}
		}
	}

	*u = User{ID: id, Name: name, CreatedAt: createdAt}
	return nil
}

func requiredString(raw map[string]json.RawMessage, field string) (string, error) {
	v, ok := raw[field]
	if !ok || string(v) == "null" {
		return "", &DecodeError{Field: field, Err: errors.New("missing")}
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", &DecodeError{Field: field, Err: err}
	}
	return s, nil
}

// DecodeUser parses a single record.
func DecodeUser(b []byte) (User, error) {
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		return User{}, asDecodeError(err)
	}
	return u, nil
}

// DecodeUsers parses an array of records, preserving order.
func DecodeUsers(b []byte) ([]User, error) {
	var users []User
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, asDecodeError(err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

func asDecodeError(err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	return &DecodeError{Err: err}
}

// Joined renders CreatedAt as a calendar date, or "-" when unknown.
func (u User) Joined() string {
	if u.CreatedAt.IsZero() {
		return "-"
	}
	return u.CreatedAt.Format(JoinedLayout)
}

func (u User) String() string {
	return fmt.Sprintf("%s\t%s\tJoined: %s", u.ID, u.Name, u.Joined())
}

// NameInput is the request body of create and update calls.
type NameInput struct {
	Name string `json:"name"`
}
