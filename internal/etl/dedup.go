package etl

import (
	"strings"

	"github.com/fjc-seed/internal/normalize"
)

type dedupKey struct {
	name    string
	courtID string
}

// Deduplicate merges record streams in the order given, keeping the first
// record for each (lowercased name, court) pair. Callers pass the tabular
// stream first so it wins over the magistrate stream.
func Deduplicate(streams ...[]normalize.Judge) []normalize.Judge {
	total := 0
	for _, s := range streams {
		total += len(s)
	}

	seen := make(map[dedupKey]struct{}, total)
	unique := make([]normalize.Judge, 0, total)
	for _, stream := range streams {
		for _, j := range stream {
			key := dedupKey{name: strings.ToLower(j.Name), courtID: j.CourtID}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, j)
		}
	}
	return unique
}
