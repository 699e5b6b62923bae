package import_pkg

import (
	"io"

	"github.com/fjc-seed/internal/normalize"
)

// Biographical directory columns. Only the first appointment ("(1)") is read.
const (
	ColumnID               = "jid"
	ColumnDeathYear        = "Death Year"
	ColumnCourtType        = "Court Type (1)"
	ColumnCourtName        = "Court Name (1)"
	ColumnFirstName        = "First Name"
	ColumnMiddleName       = "Middle Name"
	ColumnLastName         = "Last Name"
	ColumnSuffix           = "Suffix"
	ColumnAppointmentTitle = "Appointment Title (1)"
	ColumnSeniorStatusDate = "Senior Status Date (1)"
	ColumnTermination      = "Termination (1)"
	ColumnCommissionDate   = "Commission Date (1)"
	ColumnChiefBegin       = "Service as Chief Judge, Begin (1)"
	ColumnChiefEnd         = "Service as Chief Judge, End (1)"
)

// ImportJudges reads the biographical directory CSV
func (ci *CSVImporter) ImportJudges(filename string) ([]normalize.TabularRow, error) {
	var rows []normalize.TabularRow
	if _, err := ci.ImportCSV(filename, func(r Record) {
		rows = append(rows, tabularRow(r))
	}); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadJudges is ImportJudges over an already open reader
func (ci *CSVImporter) ReadJudges(r io.Reader) ([]normalize.TabularRow, error) {
	var rows []normalize.TabularRow
	if _, err := ci.ReadCSV(r, func(rec Record) {
		rows = append(rows, tabularRow(rec))
	}); err != nil {
		return nil, err
	}
	return rows, nil
}

func tabularRow(r Record) normalize.TabularRow {
	return normalize.TabularRow{
		ID:               r.Get(ColumnID),
		DeathYear:        r.Get(ColumnDeathYear),
		CourtType:        r.Get(ColumnCourtType),
		CourtName:        r.Get(ColumnCourtName),
		FirstName:        r.Get(ColumnFirstName),
		MiddleName:       r.Get(ColumnMiddleName),
		LastName:         r.Get(ColumnLastName),
		Suffix:           r.Get(ColumnSuffix),
		AppointmentTitle: r.Get(ColumnAppointmentTitle),
		SeniorStatusDate: r.Get(ColumnSeniorStatusDate),
		Termination:      r.Get(ColumnTermination),
		CommissionDate:   r.Get(ColumnCommissionDate),
		ChiefBegin:       r.Get(ColumnChiefBegin),
		ChiefEnd:         r.Get(ColumnChiefEnd),
	}
}

// ImportMagistrates reads the magistrate/bankruptcy JSON extract, a
// top-level array of person entries
func ImportMagistrates(filename string) ([]normalize.PersonEntry, error) {
	var entries []normalize.PersonEntry
	if err := decodeJSONFile(filename, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadMagistrates is ImportMagistrates over an already open reader
func ReadMagistrates(r io.Reader) ([]normalize.PersonEntry, error) {
	var entries []normalize.PersonEntry
	if err := decodeJSON(r, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
