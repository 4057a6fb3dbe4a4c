package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated branch session. Write operations take
// a session value explicitly instead of consulting global login state.
type Session struct {
	ID       uuid.UUID
	Branch   string
	IssuedAt time.Time
}

// NewSession creates a validated Session for a branch
func NewSession(branch string, issuedAt time.Time) (*Session, error) {
	if branch == "" {
		return nil, fmt.Errorf("branch name cannot be empty")
	}

	return &Session{
		ID:       uuid.New(),
		Branch:   branch,
		IssuedAt: issuedAt,
	}, nil
}
