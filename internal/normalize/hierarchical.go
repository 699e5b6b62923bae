package normalize

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// SourceID is an identifier that may arrive as a JSON string or number
type SourceID string

// UnmarshalJSON accepts strings, numbers, booleans and null. Non-string
// values keep the spelling earlier generator runs used in seed keys, so an
// explicit null becomes "None" while an absent id stays empty.
func (id *SourceID) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = "None"
		return nil
	case bytes.Equal(data, []byte("true")):
		*id = "True"
		return nil
	case bytes.Equal(data, []byte("false")):
		*id = "False"
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SourceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = SourceID(n.String())
	return nil
}

// Position is one entry of a person's service history
type Position struct {
	Institution string `json:"institution"`
	Title       string `json:"title"`
	DateStart   string `json:"date_start"`
	DateEnd     string `json:"date_end"`
}

func (p Position) open() bool { return strings.TrimSpace(p.DateEnd) == "" }
func (p Position) title() string { return strings.TrimSpace(p.Title) }

// PersonEntry is one judicial officer from the magistrate/bankruptcy extract
type PersonEntry struct {
	JudgeID    SourceID   `json:"judge_id"`
	DeathDate  string     `json:"death_date"`
	NameFirst  string     `json:"name_first"`
	NameMiddle string     `json:"name_middle"`
	NameLast   string     `json:"name_last"`
	NameSuffix string     `json:"name_suffix"`
	Positions  []Position `json:"positions"`
}

// SeedKey returns the natural key for this entry
func (e PersonEntry) SeedKey() string { return "mag-" + string(e.JudgeID) }

func (PersonEntry) isRawRecord() {}

// HierarchicalNormalizer admits living officers with a current, non-bankruptcy
// position. Every admitted record is Active.
type HierarchicalNormalizer struct {
	resolver CourtResolver
	rules    Rules
	logger   *zap.Logger
}

// NewHierarchicalNormalizer creates a normalizer for the magistrate extract
func NewHierarchicalNormalizer(resolver CourtResolver, rules Rules, logger *zap.Logger) *HierarchicalNormalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HierarchicalNormalizer{resolver: resolver, rules: rules, logger: logger}
}

// Normalize implements Normalizer
func (n *HierarchicalNormalizer) Normalize(rec RawRecord) (Judge, bool) {
	entry, ok := rec.(PersonEntry)
	if !ok {
		return Judge{}, false
	}

	if strings.TrimSpace(entry.DeathDate) != "" {
		n.drop(entry, "deceased")
		return Judge{}, false
	}

	current, ok := SelectPosition(entry.Positions, n.rules.Positions)
	if !ok {
		n.drop(entry, "no current position")
		return Judge{}, false
	}

	institution := strings.TrimSpace(current.Institution)
	courtID, ok := n.resolver.Resolve(institution)
	if !ok {
		n.drop(entry, "unresolvable court", zap.String("court", institution))
		return Judge{}, false
	}

	district := strings.ReplaceAll(institution, "U.S. District Court - ", "")
	district = strings.ReplaceAll(district, districtCourtPrefix, "")

	return Judge{
		CourtID:       courtID,
		Name:          joinName(entry.NameFirst, entry.NameMiddle, entry.NameLast, entry.NameSuffix),
		Title:         ResolveTitle(current.Title, n.rules.Titles),
		District:      district,
		AppointedDate: ParseDate(current.DateStart),
		Status:        StatusActive,
		SeedKey:       entry.SeedKey(),
		CourtFullName: districtCourtPrefix + district,
	}, true
}

func (n *HierarchicalNormalizer) drop(entry PersonEntry, reason string, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("seed_key", entry.SeedKey()), zap.String("reason", reason)}, fields...)
	n.logger.Debug("Dropped magistrate entry", fields...)
}
