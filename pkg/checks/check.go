package checks

import (
	"path/filepath"

	"github.com/proposaltools/proposalcheck/pkg/models"
)

// Check is a single verification performed against a customer's proposal.
// Implementations report through a CheckReport; the name keys the per-check
// output folder.
type Check interface {
	// Execute runs the check and returns its report
	Execute() (*models.CheckReport, error)

	// Name returns the check name, used for folder naming
	Name() string
}

// OutputDir returns the folder where a check stores its artifacts:
// <baseDir>/<customer>/checks/<proposal>/<check name>
func OutputDir(baseDir, customer, proposal, checkName string) string {
	return filepath.Join(baseDir, customer, "checks", proposal, checkName)
}
