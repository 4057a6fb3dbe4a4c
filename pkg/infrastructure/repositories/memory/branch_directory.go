package memory

import (
	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/repositories"
)

// BranchDirectory provides an in-memory branch directory
type BranchDirectory struct {
	branches []*entities.Branch
	names    map[string]bool
}

// Verify interface compliance
var _ repositories.BranchDirectory = (*BranchDirectory)(nil)

// NewBranchDirectory creates a directory over the given branches,
// preserving their order for rollup enumeration
func NewBranchDirectory(branches []*entities.Branch) *BranchDirectory {
	names := make(map[string]bool, len(branches))
	for _, branch := range branches {
		names[branch.Name] = true
	}
	return &BranchDirectory{branches: branches, names: names}
}

// List returns all branches in directory order
func (d *BranchDirectory) List() ([]*entities.Branch, error) {
	return d.branches, nil
}

// Contains reports whether name is a valid branch
func (d *BranchDirectory) Contains(name string) (bool, error) {
	return d.names[name], nil
}
