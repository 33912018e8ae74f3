package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleSink_Format(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(&buf)

	s.Notify("User added successfully", Success)
	s.Notify("Error adding user", Error)

	assert.Equal(t, "[success] User added successfully\n[error] Error adding user\n", buf.String())
}

func TestMulti_FansOutInOrder(t *testing.T) {
	var got []string
	rec := func(prefix string) Sink {
		return SinkFunc(func(m string, k Kind) { got = append(got, prefix+":"+string(k)+":"+m) })
	}

	Multi(rec("a"), rec("b")).Notify("hi", Success)

	assert.Equal(t, []string{"a:success:hi", "b:success:hi"}, got)
}
