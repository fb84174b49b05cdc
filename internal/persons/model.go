package persons

import "time"

// Person is a deduplicated identity observed across processed documents.
// Records are created lazily on first sighting and never updated afterwards,
// even when a later document reveals additional identity fields.
type Person struct {
	ID             string
	Name           string
	Email          string
	SSN            string
	DriversLicense string
	Passport       string
	CreatedAt      time.Time
}
