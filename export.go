package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// reportContext is the number of unchanged lines around each hunk in an
// exported report
const reportContext = 3

// ExportComparison writes a text report of result to dir and returns its
// path. The report holds the change summary followed by a unified diff of
// the two drafts.
func ExportComparison(dir string, result ComparisonResult, left, right Document) (string, error) {
	report, err := comparisonReport(result, left, right)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, reportFileName(result.Pair, left, right))
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}

// reportFileName returns comparison-<left>-vs-<right>.diff
func reportFileName(pair Pair, left, right Document) string {
	return fmt.Sprintf("comparison-%s-vs-%s.diff",
		safeFileComponent(reportLabel(pair.Left, left)),
		safeFileComponent(reportLabel(pair.Right, right)))
}

func reportLabel(slot int, doc Document) string {
	if doc.Name == "" {
		return fmt.Sprintf("draft%d", slot+1)
	}
	return fmt.Sprintf("draft%d-%s", slot+1, doc.Name)
}

func comparisonReport(result ComparisonResult, left, right Document) (string, error) {
	leftLabel := slotLabel(result.Pair.Left, left.Name)
	rightLabel := slotLabel(result.Pair.Right, right.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s -> %s\n", leftLabel, rightLabel)
	if result.Mode == WordMode {
		fmt.Fprintf(&b, "# words: +%d -%d characters\n",
			result.WordStats.AddedChars, result.WordStats.RemovedChars)
	} else {
		s := result.Stats
		fmt.Fprintf(&b, "# lines: +%d -%d ~%d, %d changes\n", s.Added, s.Removed, s.Modified, s.TotalChanges)
		for i, line := range result.Lines.ChangeIndex {
			fmt.Fprintf(&b, "#   change %d at line %d\n", i+1, line)
		}
	}

	unified := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(normalizeDocument(left.Content)),
		B:        splitLinesKeepNL(normalizeDocument(right.Content)),
		FromFile: leftLabel,
		ToFile:   rightLabel,
		Context:  reportContext,
	}
	diff, err := difflib.GetUnifiedDiffString(unified)
	if err != nil {
		return "", fmt.Errorf("render unified diff: %w", err)
	}
	b.WriteString(diff)
	return b.String(), nil
}
