// ABOUTME: Output format enumerates the rendered representations of an extracted document
// ABOUTME: Governs archive entry extensions and batch output rendering

package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
)

// OutputFormat selects the rendered representation of a document.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatHTML     OutputFormat = "html"
)

// ParseOutputFormat validates a format string.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatMarkdown, FormatText, FormatJSON, FormatHTML:
		return OutputFormat(s), nil
	case "":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Extension returns the file extension for the format, including the dot.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatJSON:
		return ".json"
	case FormatHTML:
		return ".html"
	default:
		return ".md"
	}
}

// Render produces the document's content in the format.
func (f OutputFormat) Render(doc *Document) (string, error) {
	if doc == nil {
		return "", errors.New("document is nil")
	}
	switch f {
	case FormatText:
		return doc.Text, nil
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatHTML:
		title := doc.Title
		if title == "" {
			title = "Extracted document"
		}
		return fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head><title>%s</title></head>\n<body>\n<pre>%s</pre>\n</body>\n</html>\n",
			html.EscapeString(title), html.EscapeString(doc.Markdown)), nil
	default:
		return doc.Markdown, nil
	}
}
