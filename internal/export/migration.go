package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/fjc-seed/internal/attorney"
	"github.com/fjc-seed/internal/court"
	"github.com/fjc-seed/internal/normalize"
	"github.com/fjc-seed/internal/seedid"
)

// DefaultGuardThreshold is the judge row count above which the target is
// treated as already seeded
const DefaultGuardThreshold = 10

const indent = "    "

// Migration is everything that goes into one seed migration
type Migration struct {
	Courts         []court.Court
	Judges         []normalize.Judge
	Attorneys      []attorney.Attorney
	GuardThreshold int
	Sources        []string
}

// Render produces the migration text: a single DO block that returns
// without inserting when the judges table already holds more than
// GuardThreshold rows
func (m Migration) Render() string {
	threshold := m.GuardThreshold
	if threshold <= 0 {
		threshold = DefaultGuardThreshold
	}

	courts := make([]court.Court, len(m.Courts))
	copy(courts, m.Courts)
	sort.Slice(courts, func(i, j int) bool { return courts[i].ID < courts[j].ID })

	var b strings.Builder

	b.WriteString("-- Seed data: federal judges and sample attorneys\n")
	b.WriteString("-- Generated by: seedgen generate\n")
	if len(m.Sources) > 0 {
		fmt.Fprintf(&b, "-- Sources: %s\n", strings.Join(m.Sources, ", "))
	}
	b.WriteString("\n")

	b.WriteString("-- Guard: skip if judge data already seeded\n")
	b.WriteString("DO $$ BEGIN\n")
	fmt.Fprintf(&b, "%sIF (SELECT COUNT(*) FROM judges) > %d THEN\n", indent, threshold)
	fmt.Fprintf(&b, "%s%sRAISE NOTICE 'Judges table already seeded (>%d rows), skipping.';\n", indent, indent, threshold)
	fmt.Fprintf(&b, "%s%sRETURN;\n", indent, indent)
	fmt.Fprintf(&b, "%sEND IF;\n\n", indent)

	fmt.Fprintf(&b, "%s-- Create %d federal court districts\n", indent, len(courts))
	for _, c := range courts {
		b.WriteString(indent)
		b.WriteString(CourtInsert(c))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s-- Insert %d judges\n", indent, len(m.Judges))
	for _, j := range m.Judges {
		b.WriteString(indent)
		b.WriteString(JudgeInsert(j))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s-- Insert %d attorneys\n", indent, len(m.Attorneys))
	for _, a := range m.Attorneys {
		b.WriteString(indent)
		b.WriteString(AttorneyInsert(a))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("END $$;")
	return b.String()
}

// CourtInsert renders an idempotent court insert
func CourtInsert(c court.Court) string {
	courtType := c.Type
	if courtType == "" {
		courtType = court.TypeDistrict
	}
	return fmt.Sprintf(
		"INSERT INTO courts (id, name, court_type) VALUES (%s, %s, %s) ON CONFLICT (id) DO NOTHING;",
		Text(c.ID), Text(c.Name), Text(courtType),
	)
}

// JudgeInsert renders a judge insert with a derived id and caseload
func JudgeInsert(j normalize.Judge) string {
	current, maximum := seedid.Caseload(j.SeedKey, j.Status == normalize.StatusActive)

	return "INSERT INTO judges (id, court_id, name, title, district, appointed_date, status, " +
		"senior_status_date, courtroom, current_caseload, max_caseload, specializations) VALUES (" +
		values(
			Text(seedid.DeriveID(j.SeedKey)),
			Text(j.CourtID),
			Text(j.Name),
			Text(j.Title),
			Text(j.District),
			Date(j.AppointedDate),
			Text(string(j.Status)),
			Date(j.SeniorStatusDate),
			Null,
			strconv.Itoa(current),
			strconv.Itoa(maximum),
			TextArray(nil),
		) + ");"
}

// AttorneyInsert renders an attorney insert with a derived id
func AttorneyInsert(a attorney.Attorney) string {
	return "INSERT INTO attorneys (id, court_id, bar_number, first_name, middle_name, last_name, " +
		"firm_name, email, phone, fax, address_street1, address_city, address_state, address_zip, " +
		"address_country, status, cja_panel_member, cases_handled, languages_spoken) VALUES (" +
		values(
			Text(seedid.DeriveID(a.SeedKey)),
			Text(a.CourtID),
			Text(a.BarNumber),
			Text(a.FirstName),
			Text(a.MiddleName),
			Text(a.LastName),
			NullableText(a.FirmName),
			Text(a.Email),
			Text(a.Phone),
			NullableText(a.Fax),
			Text(a.Street1),
			Text(a.City),
			Text(a.State),
			Text(a.Zip),
			Text(a.Country),
			Text(a.Status),
			Bool(a.CJAPanelMember),
			strconv.Itoa(a.CasesHandled),
			TextArray(a.Languages),
		) + ");"
}

func values(literals ...string) string {
	return strings.Join(literals, ", ")
}

// Null is the SQL null marker
const Null = "NULL"

// Text quotes s as a string literal, doubling embedded quotes
func Text(s string) string {
	return pq.QuoteLiteral(s)
}

// NullableText quotes s, or emits NULL when s is nil or empty
func NullableText(s *string) string {
	if s == nil || *s == "" {
		return Null
	}
	return Text(*s)
}

// Date renders d as a quoted timestamp literal, or NULL
func Date(d *time.Time) string {
	if d == nil {
		return Null
	}
	return Text(normalize.FormatDate(d))
}

// Bool renders a boolean literal
func Bool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// TextArray renders a text[] literal such as '{"English","Spanish"}'::text[]
func TextArray(items []string) string {
	arr := pq.StringArray(items)
	if arr == nil {
		arr = pq.StringArray{}
	}
	v, err := arr.Value()
	if err != nil {
		return "'{}'::text[]"
	}
	return Text(v.(string)) + "::text[]"
}
