package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create appends a new document record.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    filename,
    doc_type,
    person_id,
    amount,
    date,
    account_number,
    raw_text,
    file_hash,
    confidence_score,
    processed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Filename,
		doc.DocType,
		nullable(doc.PersonID),
		doc.Amount,
		nullable(doc.Date),
		nullable(doc.AccountNumber),
		doc.RawText,
		nullable(doc.FileHash),
		doc.Confidence,
		doc.ProcessedAt,
	)
	return err
}

// GetByID fetches a document by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	const query = `
SELECT id, filename, doc_type, person_id, amount, date, account_number, raw_text, file_hash, confidence_score, processed_at
FROM documents
WHERE id = $1
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, id)
	doc, err := scanDocument(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// List returns documents newest-first, honoring limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, filename, doc_type, person_id, amount, date, account_number, raw_text, file_hash, confidence_score, processed_at
FROM documents
ORDER BY processed_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func scanDocument(scan func(dest ...any) error) (Document, error) {
	var doc Document
	var personID, date, accountNumber, fileHash sql.NullString
	var confidence sql.NullFloat64
	err := scan(
		&doc.ID,
		&doc.Filename,
		&doc.DocType,
		&personID,
		&doc.Amount,
		&date,
		&accountNumber,
		&doc.RawText,
		&fileHash,
		&confidence,
		&doc.ProcessedAt,
	)
	if err != nil {
		return Document{}, err
	}
	doc.PersonID = personID.String
	doc.Date = date.String
	doc.AccountNumber = accountNumber.String
	doc.FileHash = fileHash.String
	doc.Confidence = confidence.Float64
	return doc, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
