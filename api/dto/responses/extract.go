// ABOUTME: Response DTOs for document extraction endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// TableResponse represents one extracted table in API responses
type TableResponse struct {
	Index    int        `json:"index" doc:"Zero-based position of the table in the document"`
	Page     int        `json:"page" doc:"1-based page the table appears on"`
	Grid     [][]string `json:"grid" doc:"Rectangular cell grid"`
	Markdown string     `json:"markdown" doc:"Markdown pipe-table rendering"`
	CSV      string     `json:"csv" doc:"RFC 4180 CSV rendering"`
}

// HeadingResponse represents one document heading in API responses
type HeadingResponse struct {
	Level int    `json:"level" doc:"Heading level, 1 is top-level"`
	Text  string `json:"text" doc:"Heading text"`
	Page  int    `json:"page" doc:"1-based page the heading appears on"`
}

// ImportantNumberResponse represents a notable figure found by summarization
type ImportantNumberResponse struct {
	Value   string `json:"value" doc:"The number as it appears in the document"`
	Context string `json:"context" doc:"What the number refers to"`
}

// TableSummaryResponse represents a per-table AI summary
type TableSummaryResponse struct {
	Title   string   `json:"title" doc:"Short table title"`
	KeyData []string `json:"key_data" doc:"Key data points from the table"`
}

// SummaryResponse represents the AI summary in API responses
type SummaryResponse struct {
	Summary          string                    `json:"summary" doc:"1-2 sentence overview"`
	KeyPoints        []string                  `json:"key_points" doc:"Main takeaways"`
	ImportantNumbers []ImportantNumberResponse `json:"important_numbers" doc:"Notable figures"`
	TablesSummary    []TableSummaryResponse    `json:"tables_summary" doc:"Per-table summaries"`
}

// DocumentResponse represents a single extraction result
type DocumentResponse struct {
	JobID           string            `json:"job_id" doc:"Identifier for retrieving the stored result"`
	Filename        string            `json:"filename" doc:"Original filename"`
	NumPages        int               `json:"num_pages" doc:"Number of pages in the document"`
	Markdown        string            `json:"markdown" doc:"Markdown rendering of the content"`
	Text            string            `json:"text" doc:"Plain-text rendering of the content"`
	Tables          []TableResponse   `json:"tables" doc:"Extracted tables"`
	Headings        []HeadingResponse `json:"headings,omitempty" doc:"Document headings"`
	ImagesExtracted int               `json:"images_extracted" doc:"Number of images extracted"`
	Title           string            `json:"title,omitempty" doc:"Document title when detected"`
	Summary         *SummaryResponse  `json:"summary,omitempty" doc:"AI summary when requested"`
}

// DocumentStatusResponse represents one document's fate within a batch
type DocumentStatusResponse struct {
	Filename    string `json:"filename" doc:"Original filename"`
	Success     bool   `json:"success" doc:"Whether extraction succeeded"`
	JobID       string `json:"job_id,omitempty" doc:"Identifier for retrieving the stored result"`
	NumPages    int    `json:"num_pages,omitempty" doc:"Number of pages in the document"`
	TablesCount int    `json:"tables_count,omitempty" doc:"Number of extracted tables"`
	Error       string `json:"error,omitempty" doc:"Failure description when success is false"`
	ErrorKind   string `json:"error_kind,omitempty" doc:"Failure classification when success is false"`
}

// BatchExtractResponse represents the response for a batch extraction
type BatchExtractResponse struct {
	Results   []DocumentStatusResponse `json:"results" doc:"Per-document results in submission order"`
	Total     int                      `json:"total" doc:"Number of documents submitted"`
	Succeeded int                      `json:"succeeded" doc:"Number of successful extractions"`
	Failed    int                      `json:"failed" doc:"Number of failed extractions"`
}

// TableExportResponse represents one rendered table from a stored job
type TableExportResponse struct {
	Index   int    `json:"index" doc:"Zero-based position of the table in the document"`
	Page    int    `json:"page" doc:"1-based page the table appears on"`
	Content string `json:"content" doc:"Rendered table in the requested format"`
}

// JobTablesResponse represents the tables of a stored job
type JobTablesResponse struct {
	JobID    string                `json:"job_id" doc:"Job identifier"`
	Filename string                `json:"filename" doc:"Original filename"`
	Format   string                `json:"format" doc:"Rendering format, markdown or csv"`
	Tables   []TableExportResponse `json:"tables" doc:"Rendered tables"`
}

// LanguageResponse represents one supported summary language
type LanguageResponse struct {
	Code string `json:"code" doc:"Language code"`
	Name string `json:"name" doc:"Language display name"`
}

// LanguagesResponse represents the supported language catalog
type LanguagesResponse struct {
	Languages []LanguageResponse `json:"languages" doc:"Supported summary languages"`
	Default   string             `json:"default" doc:"Language used when none is requested"`
}

// TextDiffResponse represents one changed line in a comparison
type TextDiffResponse struct {
	Type       string `json:"type" doc:"Change type, added or removed"`
	LineNumber int    `json:"line_number" doc:"1-based line number in the owning document"`
	Content    string `json:"content" doc:"Line content"`
}

// CompareResponse represents the result of comparing two documents
type CompareResponse struct {
	Doc1Name          string             `json:"doc1_name" doc:"First document name"`
	Doc2Name          string             `json:"doc2_name" doc:"Second document name"`
	SimilarityPercent float64            `json:"similarity_percent" doc:"Line-based similarity, 0-100"`
	TotalLinesDoc1    int                `json:"total_lines_doc1" doc:"Line count of the first document"`
	TotalLinesDoc2    int                `json:"total_lines_doc2" doc:"Line count of the second document"`
	AddedLines        int                `json:"added_lines" doc:"Lines present only in the second document"`
	RemovedLines      int                `json:"removed_lines" doc:"Lines present only in the first document"`
	Diffs             []TextDiffResponse `json:"diffs" doc:"Changed lines"`
	Summary           string             `json:"summary" doc:"Human-readable comparison summary"`
}

// HealthResponse represents the service health report
type HealthResponse struct {
	Status  string `json:"status" doc:"Overall service status"`
	Version string `json:"version" doc:"Service version"`
}
