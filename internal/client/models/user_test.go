package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUser_OK(t *testing.T) {
	u, err := DecodeUser([]byte(`{"createdAt":"2024-11-25T03:23:45.123Z","name":"Alice","avatar":"x.png","id":"7"}`))
	require.NoError(t, err)

	want := User{ID: "7", Name: "Alice", CreatedAt: time.Date(2024, 11, 25, 3, 23, 45, 123000000, time.UTC)}
	assert.Empty(t, cmp.Diff(want, u))
}

func TestDecodeUser_CreatedAtOptional(t *testing.T) {
	for _, body := range []string{`{"id":"1","name":"A"}`, `{"id":"1","name":"A","createdAt":null}`} {
		u, err := DecodeUser([]byte(body))
		require.NoError(t, err, body)
		assert.True(t, u.CreatedAt.IsZero())
	}
}

func TestDecodeUser_SchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing id", body: `{"name":"A"}`, field: "id"},
		{name: "null id", body: `{"id":null,"name":"A"}`, field: "id"},
		{name: "numeric id", body: `{"id":1,"name":"A"}`, field: "id"},
		{name: "missing name", body: `{"id":"1"}`, field: "name"},
		{name: "name wrong type", body: `{"id":"1","name":["A"]}`, field: "name"},
		{name: "createdAt not a date", body: `{"id":"1","name":"A","createdAt":"yesterday"}`, field: "createdAt"},
		{name: "createdAt number", body: `{"id":"1","name":"A","createdAt":1732505025}`, field: "createdAt"},
		{name: "not an object", body: `"Not found"`, field: ""},
		{name: "broken json", body: `{"id":`, field: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeUser([]byte(tt.body))
			require.ErrorIs(t, err, ErrDecode)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestDecodeUsers_PreservesOrder(t *testing.T) {
	users, err := DecodeUsers([]byte(`[{"id":"3","name":"C"},{"id":"1","name":"A"},{"id":"2","name":"B"}]`))
	require.NoError(t, err)

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestDecodeUsers_EmptyAndNull(t *testing.T) {
	for _, body := range []string{`[]`, `null`} {
		users, err := DecodeUsers([]byte(body))
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	}
}

func TestDecodeUsers_OneBadRecordFailsAll(t *testing.T) {
	_, err := DecodeUsers([]byte(`[{"id":"1","name":"A"},{"id":"2"}]`))
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "name", de.Field)
}

func TestDecodeUsers_NotAnArray(t *testing.T) {
	_, err := DecodeUsers([]byte(`{"id":"1","name":"A"}`))
	require.ErrorIs(t, err, ErrDecode)
}

func TestUser_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(User{ID: "1", Name: "A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"A"}`, string(b))

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	b, err = json.Marshal(User{ID: "1", Name: "A", CreatedAt: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"A","createdAt":"2024-01-02T03:04:05Z"}`, string(b))

	back, err := DecodeUser(b)
	require.NoError(t, err)
	assert.True(t, ts.Equal(back.CreatedAt))
}

func TestUser_Joined(t *testing.T) {
	assert.Equal(t, "-", User{}.Joined())
	assert.Equal(t, "2024-11-25", User{CreatedAt: time.Date(2024, 11, 25, 23, 0, 0, 0, time.UTC)}.Joined())
}

func TestUser_String(t *testing.T) {
	u := User{ID: "4", Name: "Dora", CreatedAt: time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "4\tDora\tJoined: 2023-05-06", u.String())
}
