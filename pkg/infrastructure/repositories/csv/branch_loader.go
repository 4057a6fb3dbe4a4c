package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/vsinha/bundletrack/pkg/domain/entities"
)

// DefaultBranchNames is the fallback branch list used when no directory
// file is provided.
var DefaultBranchNames = []string{
	"Cambridge", "Marietta", "Holt", "Monroe", "Mentor", "Brunswick",
	"Gallipolis", "North Canton", "Evansville", "Dublin", "Perrysburg",
	"Burlington", "Indianapolis", "Fort Wayne", "Heath", "Mansfield",
	"Novi", "South Charleston",
}

// LoadBranches loads the branch directory from a CSV file with a
// branch_name column. A missing file is not an error: the fixed fallback
// list is returned instead. Duplicate and empty names are dropped,
// preserving first-occurrence order.
func (l *Loader) LoadBranches(filename string) ([]*entities.Branch, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Info("branch file not found, using fallback list",
				zap.String("file", filename),
				zap.Int("branches", len(DefaultBranchNames)))
			return defaultBranches(), nil
		}
		return nil, fmt.Errorf("failed to open branch file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read branch CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("branch CSV %s must have a header row", filename)
	}

	nameCol := -1
	for i, col := range records[0] {
		if strings.EqualFold(strings.TrimSpace(col), "branch_name") {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("branch CSV %s: missing branch_name column", filename)
	}

	seen := make(map[string]bool)
	var branches []*entities.Branch
	for _, record := range records[1:] {
		if nameCol >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameCol])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		branch, err := entities.NewBranch(name)
		if err != nil {
			continue
		}
		branches = append(branches, branch)
	}

	return branches, nil
}

func defaultBranches() []*entities.Branch {
	branches := make([]*entities.Branch, 0, len(DefaultBranchNames))
	for _, name := range DefaultBranchNames {
		branches = append(branches, &entities.Branch{Name: name})
	}
	return branches
}
