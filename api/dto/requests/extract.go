// ABOUTME: Request DTOs for document extraction endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// ExtractOptions controls which optional extraction features are enabled
type ExtractOptions struct {
	// ExtractImages enables image extraction from the document (default: true)
	ExtractImages *bool `json:"extract_images,omitempty" default:"true" doc:"Extract embedded images from the document"`

	// Summarize enables AI summarization of the extracted text
	Summarize bool `json:"summarize,omitempty" doc:"Generate an AI summary of the document"`

	// Language is the target language for the summary
	Language string `json:"language,omitempty" doc:"Target language for the AI summary"`

	// OCRLanguage is a hint for OCR processing of scanned documents
	OCRLanguage string `json:"ocr_language,omitempty" doc:"OCR language hint for scanned documents"`
}

// ExtractDocumentRequest represents one document to extract
type ExtractDocumentRequest struct {
	// Filename is the original name of the document
	Filename string `json:"filename" required:"true" minLength:"1" doc:"Original filename of the document"`

	// Content is the raw document payload, base64-encoded in JSON
	Content []byte `json:"content,omitempty" doc:"Document payload (base64)"`

	// URL is an alternative remote location to fetch the document from
	URL string `json:"url,omitempty" format:"uri" doc:"Remote URL to fetch the document from"`

	// Options controls optional extraction features
	Options *ExtractOptions `json:"options,omitempty" doc:"Optional extraction configuration"`

	// OutputFormat selects the rendering for format-sensitive endpoints
	OutputFormat string `json:"output_format,omitempty" enum:"markdown,text,json,html" doc:"Output format for rendered content"`
}

// ApplyDefaults sets default values for optional fields
func (r *ExtractDocumentRequest) ApplyDefaults() {
	if r.Options == nil {
		r.Options = &ExtractOptions{}
	}
	if r.Options.ExtractImages == nil {
		enabled := true
		r.Options.ExtractImages = &enabled
	}
}

// BatchExtractRequest represents the request body for extracting multiple documents
type BatchExtractRequest struct {
	// Documents is the list of documents to extract
	Documents []ExtractDocumentRequest `json:"documents" minItems:"1" doc:"Documents to extract"`

	// Options applies to every document that does not carry its own
	Options *ExtractOptions `json:"options,omitempty" doc:"Default extraction configuration for the batch"`

	// OutputFormat selects the rendering for archive downloads
	OutputFormat string `json:"output_format,omitempty" enum:"markdown,text,json,html" doc:"Output format for rendered content"`
}

// ApplyDefaults sets default values for optional fields
func (r *BatchExtractRequest) ApplyDefaults() {
	if r.Options == nil {
		r.Options = &ExtractOptions{}
	}
	if r.Options.ExtractImages == nil {
		enabled := true
		r.Options.ExtractImages = &enabled
	}

	for i := range r.Documents {
		if r.Documents[i].Options == nil {
			r.Documents[i].Options = r.Options
		}
		r.Documents[i].ApplyDefaults()
	}
}

// CompareRequest represents the request body for comparing two documents.
// Both documents are extracted first, then their texts are diffed.
type CompareRequest struct {
	// Doc1 is the first document to extract and compare
	Doc1 ExtractDocumentRequest `json:"doc1" required:"true" doc:"First document"`

	// Doc2 is the second document to extract and compare
	Doc2 ExtractDocumentRequest `json:"doc2" required:"true" doc:"Second document"`
}

// ApplyDefaults sets default values for optional fields
func (r *CompareRequest) ApplyDefaults() {
	r.Doc1.ApplyDefaults()
	r.Doc2.ApplyDefaults()
}
