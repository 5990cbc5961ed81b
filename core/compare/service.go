// ABOUTME: Document comparison computes line-level differences between two extracted texts
// ABOUTME: Pure LCS-based diff with a similarity score and per-line change records

package compare

import (
	"fmt"
	"strings"
)

// ChangeType classifies one diff line
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
)

// TextDiff is a single difference in text
type TextDiff struct {
	// Type is the change classification
	Type ChangeType `json:"type"`

	// LineNumber is the 1-based line position in the second document for
	// additions and in the first document for removals
	LineNumber int `json:"line_number"`

	// Content is the changed line without the diff marker
	Content string `json:"content"`
}

// Result captures the outcome of comparing two documents
type Result struct {
	Doc1Name          string     `json:"doc1_name"`
	Doc2Name          string     `json:"doc2_name"`
	SimilarityPercent float64    `json:"similarity_percent"`
	TotalLinesDoc1    int        `json:"total_lines_doc1"`
	TotalLinesDoc2    int        `json:"total_lines_doc2"`
	AddedLines        int        `json:"added_lines"`
	RemovedLines      int        `json:"removed_lines"`
	Diffs             []TextDiff `json:"diffs"`
	Summary           string     `json:"summary"`
}

// Compare diffs two document texts line by line.
func Compare(text1, text2, doc1Name, doc2Name string) Result {
	lines1 := splitLines(text1)
	lines2 := splitLines(text2)

	matched := lcsLength(lines1, lines2)
	similarity := 100.0
	if len(lines1)+len(lines2) > 0 {
		similarity = 200.0 * float64(matched) / float64(len(lines1)+len(lines2))
	}

	diffs := diffLines(lines1, lines2)
	added, removed := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case ChangeAdded:
			added++
		case ChangeRemoved:
			removed++
		}
	}

	return Result{
		Doc1Name:          doc1Name,
		Doc2Name:          doc2Name,
		SimilarityPercent: round2(similarity),
		TotalLinesDoc1:    len(lines1),
		TotalLinesDoc2:    len(lines2),
		AddedLines:        added,
		RemovedLines:      removed,
		Diffs:             diffs,
		Summary:           summarize(similarity, added, removed),
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// lcsLength returns the length of the longest common subsequence of lines
func lcsLength(a, b []string) int {
	return lcsTable(a, b)[len(a)][len(b)]
}

func lcsTable(a, b []string) [][]int {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}

// diffLines walks the LCS table backwards to emit removals and additions
func diffLines(a, b []string) []TextDiff {
	table := lcsTable(a, b)

	var reversed []TextDiff
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			reversed = append(reversed, TextDiff{Type: ChangeAdded, LineNumber: j, Content: b[j-1]})
			j--
		default:
			reversed = append(reversed, TextDiff{Type: ChangeRemoved, LineNumber: i, Content: a[i-1]})
			i--
		}
	}

	diffs := make([]TextDiff, len(reversed))
	for k := range reversed {
		diffs[k] = reversed[len(reversed)-1-k]
	}
	return diffs
}

func summarize(similarity float64, added, removed int) string {
	var summary string
	switch {
	case similarity > 95:
		summary = "Documents are nearly identical."
	case similarity > 80:
		summary = "Documents are similar with minor differences."
	case similarity > 50:
		summary = "Documents have moderate differences."
	default:
		summary = "Documents are substantially different."
	}
	return fmt.Sprintf("%s %d lines added, %d lines removed.", summary, added, removed)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
