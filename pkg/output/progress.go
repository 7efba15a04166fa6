package output

import (
	"github.com/cheggaaa/pb/v3"

	"github.com/proposaltools/proposalcheck/pkg/models"
)

// ProgressPresenter wraps another presenter with a progress bar over the
// proposal file list
type ProgressPresenter struct {
	inner Presenter
	bar   *pb.ProgressBar
}

// NewProgressPresenter creates a progress presenter delegating the final
// summary to inner
func NewProgressPresenter(inner Presenter) *ProgressPresenter {
	return &ProgressPresenter{inner: inner}
}

// Progress advances the bar, starting it on the first update
func (p *ProgressPresenter) Progress(current, total int, path string) {
	if p.bar == nil {
		p.bar = pb.StartNew(total)
	}
	p.bar.SetCurrent(int64(current))
}

// Complete finishes the bar and renders the summary
func (p *ProgressPresenter) Complete(report *models.CheckReport) error {
	if p.bar != nil {
		p.bar.Finish()
	}
	return p.inner.Complete(report)
}

// Name returns the presenter name
func (p *ProgressPresenter) Name() string {
	return "progress"
}
