// ABOUTME: Shared prompt construction and response decoding for summarizer adapters
// ABOUTME: Keeps the JSON contract identical regardless of which model provider is wired

package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"docextract-app-api/core/domain"
	apperrors "docextract-app-api/core/errors"
)

// BuildPrompt renders the summarization prompt for the given document text.
// Text beyond maxChars is truncated so oversized documents stay within
// provider token limits. The cut lands on a rune boundary so a multi-byte
// character is never split into an invalid sequence.
func BuildPrompt(text string, language string, maxChars int) string {
	if maxChars > 0 && len(text) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	var b strings.Builder
	b.WriteString("Analyze the following document and respond with a single JSON object, no other text.\n")
	b.WriteString("The object must have exactly these fields:\n")
	b.WriteString(`  "summary": a 1-2 sentence overview of the document` + "\n")
	b.WriteString(`  "key_points": an array of up to 5 short bullet strings` + "\n")
	b.WriteString(`  "important_numbers": an array of {"value", "context"} objects for notable figures` + "\n")
	b.WriteString(`  "tables_summary": an array of {"title", "key_data"} objects, one per table, or empty` + "\n")
	if language != "" {
		fmt.Fprintf(&b, "Write all output in %s.\n", language)
	}
	b.WriteString("\nDocument:\n")
	b.WriteString(text)
	return b.String()
}

// DecodeSummary parses a model reply into a Summary. Models frequently wrap
// JSON in markdown code fences despite instructions, so fences are stripped
// before decoding.
func DecodeSummary(content string) (*domain.Summary, error) {
	cleaned := StripFences(content)

	var summary domain.Summary
	if err := json.Unmarshal([]byte(cleaned), &summary); err != nil {
		return nil, apperrors.Wrap(apperrors.KindServiceUnavailable, "summarizer returned non-JSON output", err)
	}
	return &summary, nil
}

// StripFences removes a surrounding markdown code fence, with or without a
// language tag, leaving other content untouched.
func StripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line, e.g. "json".
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
