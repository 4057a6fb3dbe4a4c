// Package session issues branch sessions. A session is an explicit value
// handed to write operations, replacing page-level login flags: callers
// cannot record sales without first passing directory validation here.
package session

import (
	"fmt"
	"time"

	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/repositories"
)

// Service validates branch names against the directory and issues sessions
type Service struct {
	directory repositories.BranchDirectory
	now       func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the wall clock, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a session service over the given branch directory
func NewService(directory repositories.BranchDirectory, opts ...Option) *Service {
	s := &Service{directory: directory, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open issues a session for the named branch, failing for names not in
// the directory
func (s *Service) Open(branch string) (*entities.Session, error) {
	if branch == "" {
		return nil, fmt.Errorf("branch name cannot be empty")
	}

	known, err := s.directory.Contains(branch)
	if err != nil {
		return nil, fmt.Errorf("failed to check branch directory: %w", err)
	}
	if !known {
		return nil, fmt.Errorf("unknown branch: %s", branch)
	}

	return entities.NewSession(branch, s.now())
}
