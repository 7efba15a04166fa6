package diff

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/proposaltools/proposalcheck/pkg/models"
)

// Engine computes unified diffs between resolved local files and their
// proposal counterparts, writing the non-empty ones as patch artifacts.
type Engine struct {
	outputDir string
}

// NewEngine creates a diff engine writing artifacts into outputDir.
// The directory must already exist; creating it is the caller's job.
func NewEngine(outputDir string) *Engine {
	return &Engine{outputDir: outputDir}
}

// Compare diffs the local file ("from" side) against the proposal content
// ("to" side). Identical content yields (nil, nil) and leaves no trace on
// disk. Divergent content is written to <local stem>.patch in the output
// directory and reported as a Compared. Two local files sharing a base name
// overwrite the same artifact; kept as-is from the original behavior.
func (e *Engine) Compare(localPath string, source models.SourceCode) (*models.Compared, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read local file %s: %w", localPath, err)
	}

	unified := difflib.UnifiedDiff{
		A:        toDiffLines(splitLines(string(data))),
		B:        toDiffLines(source.Content),
		FromFile: localPath,
		ToFile:   source.FileName,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(unified)
	if err != nil {
		return nil, fmt.Errorf("failed to compute diff for %s: %w", localPath, err)
	}

	if text == "" {
		return nil, nil
	}

	artifact := filepath.Join(e.outputDir, stem(localPath)+".patch")
	if err := os.WriteFile(artifact, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("failed to write diff artifact %s: %w", artifact, err)
	}

	return &models.Compared{
		LocalFile:    localPath,
		ProposalFile: source.FileName,
		DiffPath:     artifact,
	}, nil
}

// splitLines splits text into lines without terminators, preserving order.
// A single trailing newline does not produce a phantom empty line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// toDiffLines terminates each line with a newline, the form the diff
// algorithm expects. Both sides go through this so line endings can never
// create a spurious delta.
func toDiffLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}

// stem returns the base name of a path without its final extension
func stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
