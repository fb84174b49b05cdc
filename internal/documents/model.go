package documents

import "time"

// Document is one processed file. Records are append-only: a document is
// never mutated after creation, and reprocessing the same file is allowed to
// create a second record (no content-hash dedup).
type Document struct {
	ID            string
	Filename      string
	DocType       string
	PersonID      string
	Amount        float64
	Date          string
	AccountNumber string
	RawText       string
	FileHash      string
	Confidence    float64
	ProcessedAt   time.Time
}
