package checks

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/proposaltools/proposalcheck/pkg/diff"
	"github.com/proposaltools/proposalcheck/pkg/logging"
	"github.com/proposaltools/proposalcheck/pkg/models"
	"github.com/proposaltools/proposalcheck/pkg/repotree"
)

// DiffCheckName is the folder name used for diff check artifacts
const DiffCheckName = "diffs"

// ProgressFunc is invoked once per proposal file as the check advances
type ProgressFunc func(current, total int, path string)

// DiffCheck verifies that the source files declared by a proposal match the
// local repository checkout, bucketing every file as missing, divergent or
// clean.
type DiffCheck struct {
	customer string
	proposal string
	tree     *repotree.Tree
	engine   *diff.Engine
	sources  []models.SourceCode
	logger   logging.Logger
	progress ProgressFunc
}

// NewDiffCheck creates a diff check for the given proposal sources.
// A nil logger disables logging.
func NewDiffCheck(
	customer, proposal string,
	tree *repotree.Tree,
	engine *diff.Engine,
	sources []models.SourceCode,
	logger logging.Logger,
) *DiffCheck {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &DiffCheck{
		customer: customer,
		proposal: proposal,
		tree:     tree,
		engine:   engine,
		sources:  sources,
		logger:   logger,
	}
}

// SetProgressCallback sets the per-file progress callback
func (c *DiffCheck) SetProgressCallback(callback ProgressFunc) {
	c.progress = callback
}

// Name returns the check name
func (c *DiffCheck) Name() string {
	return DiffCheckName
}

// Execute resolves every declared path and diffs the resolved pairs.
// Files without a unique local match land in the missing bucket and
// processing continues; failing to read a matched file or to write a diff
// artifact aborts the run, since that is an environment problem rather than
// a content mismatch. Every input file ends in exactly one of the missing,
// diffs or clean buckets.
func (c *DiffCheck) Execute() (*models.CheckReport, error) {
	report := &models.CheckReport{
		RunID:           uuid.New().String(),
		Customer:        c.customer,
		ProposalAddress: c.proposal,
		StartTime:       time.Now(),
		Total:           len(c.sources),
	}

	if revision, ok := repotree.Revision(c.tree.Root()); ok {
		report.Revision = revision
	}

	c.logger.Info("starting diff check", logging.Fields{
		"run_id":   report.RunID,
		"customer": c.customer,
		"proposal": c.proposal,
		"files":    len(c.sources),
	})

	for i, source := range c.sources {
		if c.progress != nil {
			c.progress(i+1, len(c.sources), source.FileName)
		}

		localPath, ok := c.tree.Resolve(source.FileName)
		if !ok {
			c.logger.Warn("no local match", logging.Fields{
				"file": source.FileName,
			})
			report.Missing = append(report.Missing, source)
			continue
		}

		compared, err := c.engine.Compare(localPath, source)
		if err != nil {
			c.logger.Error("diff check aborted", err, logging.Fields{
				"file": source.FileName,
			})
			return nil, fmt.Errorf("diff check failed on %s: %w", source.FileName, err)
		}

		if compared != nil {
			report.Diffs = append(report.Diffs, *compared)
		} else {
			report.Clean++
		}
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	c.logger.Info("diff check complete", logging.Fields{
		"run_id":  report.RunID,
		"status":  string(report.Status()),
		"missing": len(report.Missing),
		"diffs":   len(report.Diffs),
		"clean":   report.Clean,
	})

	return report, nil
}
