// Package remote loads proposal source bundles from disk. Retrieval from
// the chain API happens upstream; this package only parses what the
// retrieval tool already saved.
package remote

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/proposaltools/proposalcheck/pkg/models"
)

// bundleEntry mirrors one element of the saved retrieval output
type bundleEntry struct {
	FileName    string `json:"file_name"`
	FileContent string `json:"file_content"`
}

// LoadBundle reads proposal source files from a JSON bundle: an array of
// objects carrying file_name and file_content. Entries keep their input
// order; content is split into lines on load.
func LoadBundle(path string) ([]models.SourceCode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source bundle: %w", err)
	}

	var entries []bundleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse source bundle %s: %w", path, err)
	}

	sources := make([]models.SourceCode, 0, len(entries))
	for i, entry := range entries {
		if entry.FileName == "" {
			return nil, fmt.Errorf("source bundle %s: entry %d has no file_name", path, i)
		}
		sources = append(sources, models.SourceCode{
			FileName: entry.FileName,
			Content:  splitContent(entry.FileContent),
		})
	}

	return sources, nil
}

// splitContent splits file content into lines without terminators
func splitContent(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
