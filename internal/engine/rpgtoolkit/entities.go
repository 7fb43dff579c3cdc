package rpgtoolkit

import "github.com/KirkDiggler/rpg-toolkit/core"

// SessionEntity stands in for the game session itself as the source of
// events that no combatant owns, such as state changes.
type SessionEntity struct {
	ID string
}

// NewSessionEntity wraps a session ID as an rpg-toolkit entity
func NewSessionEntity(id string) *SessionEntity {
	return &SessionEntity{ID: id}
}

// GetID returns the session ID
func (s *SessionEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SessionEntity) GetType() string {
	return "session"
}

// Compile-time check that our entity wrappers implement core.Entity
var _ core.Entity = (*SessionEntity)(nil)
