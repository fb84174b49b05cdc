package persons

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"docproc-backend/internal/fields"
)

// MemoryRepo is an in-memory implementation of Repo for tests and dev mode.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Person
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// FindOrCreate scans persons in insertion order and returns the first one
// sharing any populated identity field, creating a new person on miss.
func (r *MemoryRepo) FindOrCreate(ctx context.Context, identity fields.Identity) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.data {
		if matches(r.data[i], identity) {
			return r.data[i].ID, nil
		}
	}

	p := Person{
		ID:             uuid.NewString(),
		Name:           identity.Name,
		Email:          identity.Email,
		SSN:            identity.SSN,
		DriversLicense: identity.DriversLicense,
		Passport:       identity.Passport,
		CreatedAt:      time.Now().UTC(),
	}
	r.data = append(r.data, p)
	return p.ID, nil
}

// GetByID returns a person by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Person, error) {
	if err := ctx.Err(); err != nil {
		return Person{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.data {
		if r.data[i].ID == id {
			return r.data[i], nil
		}
	}
	return Person{}, ErrNotFound
}

// matches mirrors the SQL OR-lookup: empty fields never match.
func matches(p Person, identity fields.Identity) bool {
	switch {
	case identity.Name != "" && identity.Name == p.Name:
		return true
	case identity.Email != "" && identity.Email == p.Email:
		return true
	case identity.SSN != "" && identity.SSN == p.SSN:
		return true
	case identity.DriversLicense != "" && identity.DriversLicense == p.DriversLicense:
		return true
	case identity.Passport != "" && identity.Passport == p.Passport:
		return true
	}
	return false
}

var _ Repo = (*MemoryRepo)(nil)
