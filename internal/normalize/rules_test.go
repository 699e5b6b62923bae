package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTitle(t *testing.T) {
	rules := DefaultRules().Titles

	tests := []struct {
		raw  string
		want string
	}{
		{"", "Judge"},
		{"   ", "Judge"},
		{"Judge", "Judge"},
		{"Chief Judge", "Chief Judge"},
		{"Magistrate Judge", "Magistrate Judge"},
		{"Senior Judge", "Senior Judge"},
		{"Chief Magistrate Judge", "Chief Judge"},
		{"Senior Magistrate Judge", "Magistrate Judge"},
		{"Associate Justice", "Judge"},
		{"chief judge", "Judge"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTitle(tt.raw, rules))
		})
	}
}

func TestResolveStatus(t *testing.T) {
	rules := DefaultRules().Statuses

	tests := []struct {
		name  string
		facts StatusFacts
		want  Status
	}{
		{
			name:  "no termination no senior date",
			facts: StatusFacts{},
			want:  StatusActive,
		},
		{
			name:  "senior status date",
			facts: StatusFacts{SeniorStatusDate: "2015-06-01"},
			want:  StatusSenior,
		},
		{
			name:  "retirement wins over senior date",
			facts: StatusFacts{Termination: "Retirement", SeniorStatusDate: "2015-06-01"},
			want:  StatusRetired,
		},
		{
			name:  "termination must equal retirement exactly",
			facts: StatusFacts{Termination: "Retirement (voluntary)"},
			want:  StatusActive,
		},
		{
			name:  "whitespace around retirement is trimmed",
			facts: StatusFacts{Termination: " Retirement "},
			want:  StatusRetired,
		},
		{
			name:  "resignation is not a status",
			facts: StatusFacts{Termination: "Resignation"},
			want:  StatusActive,
		},
		{
			name:  "unparseable senior date still counts",
			facts: StatusFacts{SeniorStatusDate: "sometime"},
			want:  StatusSenior,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(tt.facts, rules))
		})
	}
}

func TestSelectPosition(t *testing.T) {
	rules := DefaultRules().Positions

	tests := []struct {
		name      string
		positions []Position
		wantInst  string
		wantOK    bool
	}{
		{
			name: "open magistrate preferred over earlier open district",
			positions: []Position{
				{Institution: "A", Title: "District Judge"},
				{Institution: "B", Title: "Magistrate Judge"},
			},
			wantInst: "B",
			wantOK:   true,
		},
		{
			name: "closed magistrate ignored",
			positions: []Position{
				{Institution: "A", Title: "Magistrate Judge", DateEnd: "2010-01-01"},
				{Institution: "B", Title: "District Judge"},
			},
			wantInst: "B",
			wantOK:   true,
		},
		{
			name: "bankruptcy only",
			positions: []Position{
				{Institution: "A", Title: "Bankruptcy Judge"},
			},
			wantOK: false,
		},
		{
			name: "first open non-bankruptcy wins",
			positions: []Position{
				{Institution: "A", Title: "Bankruptcy Judge"},
				{Institution: "B", Title: "Clerk"},
				{Institution: "C", Title: "District Judge"},
			},
			wantInst: "B",
			wantOK:   true,
		},
		{
			name:   "no positions",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectPosition(tt.positions, rules)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantInst, got.Institution)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1994-08-12", "1994-08-12T00:00:00Z"},
		{"08/12/1994", "1994-08-12T00:00:00Z"},
		{"8/2/1994", "1994-08-02T00:00:00Z"},
		{"1994", "1994-01-01T00:00:00Z"},
		{"  2001-03-04  ", "2001-03-04T00:00:00Z"},
		{"", ""},
		{"   ", ""},
		{"not a date", ""},
		{"1994-13-01", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(ParseDate(tt.input)))
		})
	}
}

func TestParseDateUTC(t *testing.T) {
	d := ParseDate("2020-02-29")
	require.NotNil(t, d)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, time.February, d.Month())
}

func TestJoinName(t *testing.T) {
	assert.Equal(t, "John Quincy Adams", joinName("John", "Quincy", "Adams", ""))
	assert.Equal(t, "John Adams Jr.", joinName("John", " ", "Adams", "Jr."))
	assert.Equal(t, "John Adams", joinName(" John ", "", " Adams ", " "))
}
