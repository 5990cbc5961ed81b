// ABOUTME: Summary domain model holds the AI-generated summary of an extracted document
// ABOUTME: Produced by the summarization collaborator, attached to an outcome, never mutates the document

package domain

// Summary is the AI-generated summary of an extracted document.
type Summary struct {
	// Summary is a brief free-text overview
	Summary string `json:"summary"`

	// KeyPoints are the extracted bullet points
	KeyPoints []string `json:"key_points"`

	// ImportantNumbers are notable figures with their context
	ImportantNumbers []ImportantNumber `json:"important_numbers"`

	// TablesSummary summarizes key data from the document's tables
	TablesSummary []TableSummary `json:"tables_summary"`
}

// ImportantNumber is one notable figure from the document.
type ImportantNumber struct {
	Value   string `json:"value"`
	Context string `json:"context"`
}

// TableSummary summarizes one table.
type TableSummary struct {
	Title   string   `json:"title"`
	KeyData []string `json:"key_data"`
}
