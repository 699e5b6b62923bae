package normalize

import (
	"strings"

	"go.uber.org/zap"
)

// DistrictCourtType is the only court type admitted from the tabular extract
const DistrictCourtType = "U.S. District Court"

const districtCourtPrefix = "U.S. District Court for the "

// TabularRow is one row of the biographical directory CSV, first
// appointment columns only
type TabularRow struct {
	ID               string // jid
	DeathYear        string
	CourtType        string
	CourtName        string
	FirstName        string
	MiddleName       string
	LastName         string
	Suffix           string
	AppointmentTitle string
	SeniorStatusDate string
	Termination      string
	CommissionDate   string
	ChiefBegin       string
	ChiefEnd         string
}

// SeedKey returns the natural key for this row
func (r TabularRow) SeedKey() string { return "csv-" + r.ID }

func (TabularRow) isRawRecord() {}

// TabularNormalizer admits living Article III district judges
type TabularNormalizer struct {
	resolver CourtResolver
	rules    Rules
	logger   *zap.Logger
}

// NewTabularNormalizer creates a normalizer for the tabular extract
func NewTabularNormalizer(resolver CourtResolver, rules Rules, logger *zap.Logger) *TabularNormalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TabularNormalizer{resolver: resolver, rules: rules, logger: logger}
}

// Normalize implements Normalizer
func (n *TabularNormalizer) Normalize(rec RawRecord) (Judge, bool) {
	row, ok := rec.(TabularRow)
	if !ok {
		return Judge{}, false
	}

	if strings.TrimSpace(row.DeathYear) != "" {
		n.drop(row, "deceased")
		return Judge{}, false
	}

	if strings.TrimSpace(row.CourtType) != DistrictCourtType {
		n.drop(row, "not a district court")
		return Judge{}, false
	}

	courtName := strings.TrimSpace(row.CourtName)
	courtID, ok := n.resolver.Resolve(courtName)
	if !ok {
		n.drop(row, "unresolvable court", zap.String("court", courtName))
		return Judge{}, false
	}

	title := ResolveTitle(row.AppointmentTitle, n.rules.Titles)
	// Currently serving chief judges have a begin date and no end date
	if strings.TrimSpace(row.ChiefBegin) != "" && strings.TrimSpace(row.ChiefEnd) == "" {
		title = "Chief Judge"
	}

	status := ResolveStatus(StatusFacts{
		Termination:      row.Termination,
		SeniorStatusDate: row.SeniorStatusDate,
	}, n.rules.Statuses)

	return Judge{
		CourtID:          courtID,
		Name:             joinName(row.FirstName, row.MiddleName, row.LastName, row.Suffix),
		Title:            title,
		District:         strings.ReplaceAll(courtName, districtCourtPrefix, ""),
		AppointedDate:    ParseDate(row.CommissionDate),
		Status:           status,
		SeniorStatusDate: ParseDate(row.SeniorStatusDate),
		SeedKey:          row.SeedKey(),
		CourtFullName:    courtName,
	}, true
}

func (n *TabularNormalizer) drop(row TabularRow, reason string, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("seed_key", row.SeedKey()), zap.String("reason", reason)}, fields...)
	n.logger.Debug("Dropped tabular row", fields...)
}
