package persons

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"docproc-backend/internal/fields"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// FindOrCreate looks a person up by any populated identity field and inserts
// a new row on miss. Empty fields are passed as NULL, which never matches.
func (r *PGRepo) FindOrCreate(ctx context.Context, identity fields.Identity) (string, error) {
	const lookup = `
SELECT id
FROM persons
WHERE name = $1 OR email = $2 OR ssn = $3 OR drivers_license = $4 OR passport = $5
LIMIT 1`

	name := nullable(identity.Name)
	email := nullable(identity.Email)
	ssn := nullable(identity.SSN)
	license := nullable(identity.DriversLicense)
	passport := nullable(identity.Passport)

	var id string
	err := r.DB.QueryRowContext(ctx, lookup, name, email, ssn, license, passport).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	const insert = `
INSERT INTO persons (id, name, email, ssn, drivers_license, passport, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	id = uuid.NewString()
	if _, err := r.DB.ExecContext(ctx, insert, id, name, email, ssn, license, passport, time.Now().UTC()); err != nil {
		return "", err
	}
	return id, nil
}

// GetByID fetches a person by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Person, error) {
	const query = `
SELECT id, name, email, ssn, drivers_license, passport, created_at
FROM persons
WHERE id = $1
LIMIT 1`

	var p Person
	var name, email, ssn, license, passport sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&name,
		&email,
		&ssn,
		&license,
		&passport,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Person{}, ErrNotFound
		}
		return Person{}, err
	}
	p.Name = name.String
	p.Email = email.String
	p.SSN = ssn.String
	p.DriversLicense = license.String
	p.Passport = passport.String
	return p, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
