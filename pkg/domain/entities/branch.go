package entities

import "fmt"

// Branch represents a physical sales location. Branches scope ledger
// queries; the directory that lists them is read-only to this subsystem.
type Branch struct {
	Name string
}

// NewBranch creates a validated Branch
func NewBranch(name string) (*Branch, error) {
	if name == "" {
		return nil, fmt.Errorf("branch name cannot be empty")
	}
	return &Branch{Name: name}, nil
}
