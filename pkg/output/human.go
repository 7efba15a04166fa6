package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/proposaltools/proposalcheck/pkg/models"
)

// HumanPresenter renders the report as a color-coded console summary:
// green for success, yellow for missing files, red for divergences.
type HumanPresenter struct {
	writer  io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
}

// NewHumanPresenter creates a human-readable presenter writing to writer
func NewHumanPresenter(writer io.Writer) *HumanPresenter {
	return &HumanPresenter{
		writer:  writer,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
}

// Progress is a no-op; the human presenter only renders the summary
func (p *HumanPresenter) Progress(current, total int, path string) {}

// Complete renders the check summary
func (p *HumanPresenter) Complete(report *models.CheckReport) error {
	msg := fmt.Sprintf("Compared %d/%d files for proposal %s",
		report.ComparedCount(), report.Total, report.ProposalAddress)
	if report.Revision != "" {
		msg += fmt.Sprintf(" (checkout %s)", shortHash(report.Revision))
	}

	if len(report.Missing) == 0 {
		p.success.Fprintln(p.writer, msg)
	} else {
		p.warning.Fprintln(p.writer, msg)
		for _, source := range report.Missing {
			p.warning.Fprintf(p.writer, "Missing file: %s in local repo\n", source.FileName)
		}
	}

	if len(report.Diffs) == 0 {
		p.success.Fprintln(p.writer, "No differences found.")
	} else {
		p.failure.Fprintf(p.writer, "Found differences in %d files\n", len(report.Diffs))
		for _, compared := range report.Diffs {
			p.failure.Fprintf(p.writer, "Local: %s\nProposal: %s\nDiff: %s\n",
				compared.LocalFile, compared.ProposalFile, compared.DiffPath)
		}
	}

	return nil
}

// Name returns the presenter name
func (p *HumanPresenter) Name() string {
	return "human"
}

// shortHash abbreviates a commit hash for display
func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
