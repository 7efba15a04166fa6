package output

import (
	"github.com/proposaltools/proposalcheck/pkg/models"
)

// Presenter renders check results to the user
// Implementations include human-readable, JSON and progress-bar presenters
type Presenter interface {
	// Progress reports per-file progress while a check runs
	Progress(current, total int, path string)

	// Complete renders the final report
	Complete(report *models.CheckReport) error

	// Name returns the presenter name
	Name() string
}
