package devtools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	sgdiff "github.com/sourcegraph/go-diff/diff"
	"github.com/viant/simdash/store"
)

// DiffStats counts changed lines of a state diff.
type DiffStats struct {
	Added   int
	Removed int
	Hunks   int
}

// Diff renders a unified diff between the JSON forms of prev and next. It
// returns an empty patch when both encode identically.
func Diff(prev, next store.Root, contextLines int) (string, DiffStats, error) {
	if contextLines <= 0 {
		contextLines = 2
	}
	before, err := json.MarshalIndent(prev, "", "  ")
	if err != nil {
		return "", DiffStats{}, fmt.Errorf("failed to encode previous state: %w", err)
	}
	after, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return "", DiffStats{}, fmt.Errorf("failed to encode next state: %w", err)
	}
	if bytes.Equal(before, after) {
		return "", DiffStats{}, nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before) + "\n"),
		B:        difflib.SplitLines(string(after) + "\n"),
		FromFile: "a/state.json",
		ToFile:   "b/state.json",
		Context:  contextLines,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", DiffStats{}, fmt.Errorf("diff generation: %w", err)
	}
	stats, err := diffStats(patch)
	return patch, stats, err
}

func diffStats(patch string) (DiffStats, error) {
	files, err := sgdiff.ParseMultiFileDiff([]byte(patch))
	if err != nil {
		return DiffStats{}, fmt.Errorf("parse diff: %w", err)
	}
	var stats DiffStats
	for _, fd := range files {
		for _, hunk := range fd.Hunks {
			stats.Hunks++
			for _, line := range bytes.Split(hunk.Body, []byte("\n")) {
				if len(line) == 0 {
					continue
				}
				switch line[0] {
				case '+':
					stats.Added++
				case '-':
					stats.Removed++
				}
			}
		}
	}
	return stats, nil
}
