package court

import (
	"strings"
)

// Resolver turns free-text court names into short district codes.
// It holds no state beyond the tables it was built with.
type Resolver struct {
	tables Tables
}

// NewResolver creates a resolver over the given tables
func NewResolver(tables Tables) *Resolver {
	return &Resolver{tables: tables}
}

// Resolve converts a court name such as
// "U.S. District Court for the Northern District of California" into "cand".
// Matching is plain substring search in table order, so a name that merely
// contains a state name resolves to that state.
func (r *Resolver) Resolve(rawName string) (string, bool) {
	if rawName == "" {
		return "", false
	}

	cleaned := rawName
	for _, prefix := range r.tables.Prefixes {
		cleaned = strings.ReplaceAll(cleaned, prefix, "")
	}

	direction := ""
	for _, d := range r.tables.Directions {
		if strings.Contains(cleaned, d.Name) {
			direction = d.Abbrev
			cleaned = strings.ReplaceAll(cleaned, d.Name+" District of ", "")
			cleaned = strings.ReplaceAll(cleaned, d.Name+" ", "")
			break
		}
	}

	for _, region := range r.tables.Regions {
		if strings.Contains(cleaned, region.Name) {
			return region.Abbrev + direction + "d", true
		}
	}

	return "", false
}
