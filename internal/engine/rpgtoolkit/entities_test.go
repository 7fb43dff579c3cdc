package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionEntity(t *testing.T) {
	entity := NewSessionEntity("session-1")
	assert.Equal(t, "session-1", entity.GetID())
	assert.Equal(t, "session", entity.GetType())
}
