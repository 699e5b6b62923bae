package normalize

import (
	"time"
)

// Status is the service status recorded for a judge
type Status string

const (
	StatusActive  Status = "Active"
	StatusSenior  Status = "Senior"
	StatusRetired Status = "Retired"
)

// Judge is the canonical judge record shared by every source.
// CourtID is never empty for a record returned by a Normalizer.
type Judge struct {
	CourtID          string
	Name             string
	Title            string
	District         string
	AppointedDate    *time.Time
	Status           Status
	SeniorStatusDate *time.Time
	SeedKey          string
	CourtFullName    string
}

// RawRecord is a single record as read from one of the source extracts.
// The set of implementations is closed: TabularRow and PersonEntry.
type RawRecord interface {
	SeedKey() string
	isRawRecord()
}

// Normalizer maps a raw source record onto the canonical judge shape.
// It returns false when the record must be dropped.
type Normalizer interface {
	Normalize(rec RawRecord) (Judge, bool)
}

// CourtResolver resolves a free-text court name to its short id
type CourtResolver interface {
	Resolve(rawName string) (string, bool)
}

// NormalizeAll runs n over records in order and keeps the admitted ones
func NormalizeAll[R RawRecord](n Normalizer, records []R) []Judge {
	judges := make([]Judge, 0, len(records))
	for _, rec := range records {
		if judge, ok := n.Normalize(rec); ok {
			judges = append(judges, judge)
		}
	}
	return judges
}
