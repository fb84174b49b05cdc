package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"docproc-backend/internal/documents"
	"docproc-backend/internal/extract"
	"docproc-backend/internal/fields"
	"docproc-backend/internal/persons"
	"docproc-backend/internal/shared/metrics"
	"docproc-backend/internal/shared/telemetry"
	"docproc-backend/internal/shared/util"
)

// classificationConfidence is the fixed score recorded with every processed
// document; the rule-based classifier produces no real confidence.
const classificationConfidence = 0.85

var pdfMagic = []byte("%PDF-")

// Classifier assigns a document-type label to raw text.
type Classifier interface {
	Classify(text string) string
}

// Processor runs the document-understanding pipeline for each file: text
// extraction, classification, field and identity extraction, person
// resolution, persistence.
type Processor struct {
	Classifier Classifier
	Documents  documents.Repo
	Persons    persons.Repo

	// ExtractText overrides PDF text extraction; nil means extract.Text.
	ExtractText func(path string) string
}

// Result is the per-file outcome surfaced to the batch caller.
type Result struct {
	ID            string          `json:"id"`
	Filename      string          `json:"filename"`
	DocType       string          `json:"docType"`
	Person        fields.Identity `json:"person"`
	Amount        float64         `json:"amount"`
	Date          string          `json:"date,omitempty"`
	AccountNumber string          `json:"accountNumber,omitempty"`
}

// Entry wraps one batch item as either a success or an error.
type Entry struct {
	Status string  `json:"status"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
	File   string  `json:"file"`
}

// ProcessDocument runs every pipeline stage for a single file and persists
// the outcome. Degraded extraction output (unreadable pages, parse failures
// past the header) is not an error: classification falls back to Unknown and
// the metadata fields come back empty.
func (p *Processor) ProcessDocument(ctx context.Context, path, filename string) (Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read file: %w", err)
	}
	if !bytes.HasPrefix(raw, pdfMagic) {
		return Result{}, fmt.Errorf("%s is not a PDF", filename)
	}

	text := p.extractText(path)
	docType := p.Classifier.Classify(text)
	meta := fields.Extract(text)
	identity := fields.Identify(text)

	personID, err := p.Persons.FindOrCreate(ctx, identity)
	if err != nil {
		return Result{}, fmt.Errorf("resolve person: %w", err)
	}

	doc := documents.Document{
		ID:            uuid.NewString(),
		Filename:      filename,
		DocType:       docType,
		PersonID:      personID,
		Amount:        meta.Amount,
		Date:          meta.Date,
		AccountNumber: meta.AccountNumber,
		RawText:       text,
		FileHash:      util.Sum256Hex(raw),
		Confidence:    classificationConfidence,
		ProcessedAt:   time.Now().UTC(),
	}
	if err := p.Documents.Create(ctx, doc); err != nil {
		return Result{}, fmt.Errorf("persist document: %w", err)
	}

	return Result{
		ID:            doc.ID,
		Filename:      filename,
		DocType:       docType,
		Person:        identity,
		Amount:        meta.Amount,
		Date:          meta.Date,
		AccountNumber: meta.AccountNumber,
	}, nil
}

// ProcessBatch processes paths strictly one at a time, in input order, and
// returns one entry per input in the same order. Failures are isolated per
// file: an error in any stage becomes that file's error entry and never
// aborts the batch.
func (p *Processor) ProcessBatch(ctx context.Context, paths []string) []Entry {
	metrics.IncBatch()
	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		start := time.Now()
		name := filepath.Base(path)
		result, err := p.ProcessDocument(ctx, path, name)
		if err != nil {
			metrics.IncDocumentFailed()
			telemetry.Error("pipeline.document.failed", map[string]any{
				"file": name,
				"err":  err.Error(),
			})
			entries = append(entries, Entry{Status: "error", Error: err.Error(), File: name})
			continue
		}
		durationMs := float64(time.Since(start).Microseconds()) / 1000.0
		metrics.IncDocumentProcessed()
		metrics.ObserveProcessingDurationMs(durationMs)
		telemetry.Info("pipeline.document.processed", map[string]any{
			"file":        name,
			"document_id": result.ID,
			"doc_type":    result.DocType,
			"duration_ms": durationMs,
		})
		entries = append(entries, Entry{Status: "success", Result: &result, File: name})
	}
	return entries
}

func (p *Processor) extractText(path string) string {
	if p.ExtractText != nil {
		return p.ExtractText(path)
	}
	return extract.Text(path)
}
