package import_pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const judgesCSV = "\xEF\xBB\xBFjid,First Name,Middle Name,Last Name,Suffix,Death Year,Court Type (1),Court Name (1),Appointment Title (1),\"Service as Chief Judge, Begin (1)\",Commission Date (1)\n" +
	"1393,William,Haskell,Alsup,,,U.S. District Court,U.S. District Court for the Northern District of California,Judge,,1999-08-17\n" +
	"7,\"O'Connor, Jr\",,Smith\n"

func TestReadJudges(t *testing.T) {
	importer := NewCSVImporter(zaptest.NewLogger(t))

	rows, err := importer.ReadJudges(strings.NewReader(judgesCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "1393", first.ID, "byte order mark stripped from first header")
	assert.Equal(t, "William", first.FirstName)
	assert.Equal(t, "U.S. District Court", first.CourtType)
	assert.Equal(t, "U.S. District Court for the Northern District of California", first.CourtName)
	assert.Equal(t, "1999-08-17", first.CommissionDate)
	assert.Equal(t, "", first.ChiefEnd, "absent column reads as empty")
	assert.Equal(t, "csv-1393", first.SeedKey())

	short := rows[1]
	assert.Equal(t, "O'Connor, Jr", short.FirstName)
	assert.Equal(t, "Smith", short.LastName)
	assert.Equal(t, "", short.CourtName, "short row reads missing cells as empty")
}

func TestReadJudgesEmpty(t *testing.T) {
	rows, err := NewCSVImporter(nil).ReadJudges(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadJudgesBareQuote(t *testing.T) {
	input := "jid,First Name,Middle Name,Last Name\n" +
		"12,Edward,R \"Ned\",Stone\n" +
		"13,Ann,,Lee\n"

	rows, err := NewCSVImporter(nil).ReadJudges(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, `R "Ned"`, rows[0].MiddleName)
	assert.Equal(t, "Stone", rows[0].LastName)
	assert.Equal(t, "Lee", rows[1].LastName)
}

func TestReadJudgesMalformed(t *testing.T) {
	_, err := NewCSVImporter(nil).ReadJudges(strings.NewReader("jid,Name\n1,\xff\xfe\n"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestImportJudgesMissingFile(t *testing.T) {
	_, err := NewCSVImporter(nil).ImportJudges(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportJudgesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "judges.csv")
	require.NoError(t, os.WriteFile(path, []byte(judgesCSV), 0644))

	rows, err := NewCSVImporter(nil).ImportJudges(path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

const magistratesJSON = `[
  {
    "judge_id": 4242,
    "death_date": null,
    "name_first": "Ramon",
    "name_middle": "E.",
    "name_last": "Reyes",
    "name_suffix": "Jr.",
    "positions": [
      {"institution": "U.S. District Court - Eastern District of New York", "title": "Magistrate Judge", "date_start": "2006-04-03", "date_end": null}
    ]
  },
  {"judge_id": "x9", "death_date": "2001-01-01", "positions": null}
]`

func TestReadMagistrates(t *testing.T) {
	entries, err := ReadMagistrates(strings.NewReader(magistratesJSON))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "mag-4242", first.SeedKey())
	assert.Equal(t, "", first.DeathDate)
	assert.Equal(t, "Jr.", first.NameSuffix)
	require.Len(t, first.Positions, 1)
	assert.Equal(t, "Magistrate Judge", first.Positions[0].Title)
	assert.Equal(t, "", first.Positions[0].DateEnd)

	assert.Equal(t, "mag-x9", entries[1].SeedKey())
	assert.Empty(t, entries[1].Positions)
}

func TestReadMagistratesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `[{"judge_id": 1`},
		{"object instead of array", `{"judge_id": 1}`},
		{"trailing garbage", `[] []`},
		{"not json", `judge_id,name`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMagistrates(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestImportMagistratesMissingFile(t *testing.T) {
	_, err := ImportMagistrates(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
