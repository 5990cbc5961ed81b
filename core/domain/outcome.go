// ABOUTME: Outcome models capture per-document success or failure and the batch aggregate
// ABOUTME: Failures are data, not faults; a batch result row exists for every submitted document

package domain

// Outcome is the result of processing one document.
// Exactly one of Document or Err is populated.
type Outcome struct {
	// Filename is the original name of the input document
	Filename string

	// JobID identifies the stored extraction, when job storage is configured
	JobID string

	// Document is the extraction result on success
	Document *Document

	// Summary is the optional AI summary, present only when requested and successful
	Summary *Summary

	// Err is the captured failure on error
	Err error
}

// Succeeded reports whether the extraction succeeded.
func (o *Outcome) Succeeded() bool {
	return o.Err == nil && o.Document != nil
}

// DocumentStatus is the lightweight batch projection of one outcome.
type DocumentStatus struct {
	// Filename is the original name of the input document
	Filename string

	// Success reports whether extraction succeeded
	Success bool

	// NumPages is the page count on success
	NumPages int

	// TablesCount is the number of detected tables on success
	TablesCount int

	// Error is the failure message on failure
	Error string
}

// BatchResult is the ordered sequence of per-document statuses.
// Order matches the original submission order.
type BatchResult []DocumentStatus

// Succeeded returns the number of successful documents.
func (r BatchResult) Succeeded() int {
	n := 0
	for _, s := range r {
		if s.Success {
			n++
		}
	}
	return n
}

// Failed returns the number of failed documents.
func (r BatchResult) Failed() int {
	return len(r) - r.Succeeded()
}
