package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fjc-seed/internal/normalize"
)

func TestDeduplicate(t *testing.T) {
	tabular := []normalize.Judge{
		{Name: "Jane Roe", CourtID: "cand", SeedKey: "csv-1", Title: "Judge"},
		{Name: "John Doe", CourtID: "nyed", SeedKey: "csv-2"},
	}
	hierarchical := []normalize.Judge{
		{Name: "JANE ROE", CourtID: "cand", SeedKey: "mag-1", Title: "Magistrate Judge"},
		{Name: "Jane Roe", CourtID: "nysd", SeedKey: "mag-2"},
	}

	got := Deduplicate(tabular, hierarchical)

	var keys []string
	for _, j := range got {
		keys = append(keys, j.SeedKey)
	}
	assert.Equal(t, []string{"csv-1", "csv-2", "mag-2"}, keys)
	assert.Equal(t, "Judge", got[0].Title, "tabular record wins")
}

func TestDeduplicateWithinStream(t *testing.T) {
	stream := []normalize.Judge{
		{Name: "Ann Lee", CourtID: "ilnd", SeedKey: "csv-10"},
		{Name: "ann lee", CourtID: "ilnd", SeedKey: "csv-11"},
	}

	got := Deduplicate(stream)
	assert.Len(t, got, 1)
	assert.Equal(t, "csv-10", got[0].SeedKey)
}

func TestDeduplicateEmpty(t *testing.T) {
	assert.Empty(t, Deduplicate())
	assert.Empty(t, Deduplicate(nil, nil))
}
