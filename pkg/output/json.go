package output

import (
	"encoding/json"
	"io"

	"github.com/proposaltools/proposalcheck/pkg/models"
)

// JSONPresenter dumps the report as a single JSON document for automation
type JSONPresenter struct {
	writer io.Writer
}

// NewJSONPresenter creates a JSON presenter writing to writer
func NewJSONPresenter(writer io.Writer) *JSONPresenter {
	return &JSONPresenter{writer: writer}
}

// jsonReport is the wire shape of a check report
type jsonReport struct {
	RunID      string         `json:"run_id"`
	Customer   string         `json:"customer"`
	Proposal   string         `json:"proposal"`
	Revision   string         `json:"revision,omitempty"`
	Status     string         `json:"status"`
	DurationMs int64          `json:"duration_ms"`
	Total      int            `json:"total"`
	Compared   int            `json:"compared"`
	Clean      int            `json:"clean"`
	Missing    []string       `json:"missing,omitempty"`
	Diffs      []jsonCompared `json:"diffs,omitempty"`
}

// jsonCompared is the wire shape of a single divergent file
type jsonCompared struct {
	LocalFile    string `json:"local_file"`
	ProposalFile string `json:"proposal_file"`
	DiffPath     string `json:"diff_path"`
}

// Progress is a no-op; JSON output is a single final document
func (p *JSONPresenter) Progress(current, total int, path string) {}

// Complete writes the report as indented JSON
func (p *JSONPresenter) Complete(report *models.CheckReport) error {
	out := jsonReport{
		RunID:      report.RunID,
		Customer:   report.Customer,
		Proposal:   report.ProposalAddress,
		Revision:   report.Revision,
		Status:     string(report.Status()),
		DurationMs: report.Duration.Milliseconds(),
		Total:      report.Total,
		Compared:   report.ComparedCount(),
		Clean:      report.Clean,
	}

	for _, source := range report.Missing {
		out.Missing = append(out.Missing, source.FileName)
	}
	for _, compared := range report.Diffs {
		out.Diffs = append(out.Diffs, jsonCompared{
			LocalFile:    compared.LocalFile,
			ProposalFile: compared.ProposalFile,
			DiffPath:     compared.DiffPath,
		})
	}

	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// Name returns the presenter name
func (p *JSONPresenter) Name() string {
	return "json"
}
