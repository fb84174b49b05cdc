package persons

import (
	"context"
	"errors"

	"docproc-backend/internal/fields"
)

// ErrNotFound is returned when a person does not exist.
var ErrNotFound = errors.New("person not found")

// Repo defines persistence operations for persons.
type Repo interface {
	// FindOrCreate returns the id of an existing person whose record matches
	// the identity on any populated field (name, email, ssn, drivers license
	// or passport), creating a new person when nothing matches. A same-value
	// match on a single field merges, which is lossy when two individuals
	// share a name; accepted behavior. Lookup and insert are not atomic: the
	// processing model has a single logical writer.
	FindOrCreate(ctx context.Context, identity fields.Identity) (string, error)
	GetByID(ctx context.Context, id string) (Person, error)
}
