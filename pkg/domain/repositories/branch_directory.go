package repositories

import "github.com/vsinha/bundletrack/pkg/domain/entities"

// BranchDirectory provides the read-only list of valid branches. The
// directory is authoritative for rollup enumeration and session validation;
// this subsystem never writes to it.
type BranchDirectory interface {
	List() ([]*entities.Branch, error)
	Contains(name string) (bool, error)
}
