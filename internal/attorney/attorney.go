// Package attorney builds the sample attorney records seeded next to the
// judge directory and assigns them to the courts that directory produced.
package attorney

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var fixtureYAML []byte

// Person is one fixed sample attorney
type Person struct {
	First  string `yaml:"first"`
	Middle string `yaml:"middle"`
	Last   string `yaml:"last"`
	Firm   string `yaml:"firm"`
	Status string `yaml:"status"`
}

// City is an office location cycled across attorneys
type City struct {
	City  string `yaml:"city"`
	State string `yaml:"state"`
	Zip   string `yaml:"zip"`
}

// Fixture is the static attorney dataset plus its distribution rules
type Fixture struct {
	People         []Person `yaml:"people"`
	Cities         []City   `yaml:"cities"`
	FallbackCourts []string `yaml:"fallback_courts"`
	MaxCourts      int      `yaml:"max_courts"`
}

// Attorney is a fully derived attorney row
type Attorney struct {
	SeedKey        string
	CourtID        string
	BarNumber      string
	FirstName      string
	MiddleName     string
	LastName       string
	FirmName       *string
	Email          string
	Phone          string
	Fax            *string
	Status         string
	Street1        string
	City           string
	State          string
	Zip            string
	Country        string
	CJAPanelMember bool
	CasesHandled   int
	Languages      []string
}

// DefaultFixture decodes the embedded dataset
func DefaultFixture() (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(fixtureYAML, &f); err != nil {
		return Fixture{}, fmt.Errorf("failed to decode attorney fixture: %w", err)
	}
	if len(f.Cities) == 0 {
		return Fixture{}, errors.New("attorney fixture has no cities")
	}
	if len(f.FallbackCourts) == 0 {
		return Fixture{}, errors.New("attorney fixture has no fallback courts")
	}
	return f, nil
}

// CourtPool returns the courts attorneys are spread over: the sorted ids
// capped to the smallest maxCourts, or fallback when ids is empty
func CourtPool(courtIDs []string, maxCourts int, fallback []string) []string {
	pool := make([]string, len(courtIDs))
	copy(pool, courtIDs)
	sort.Strings(pool)

	if maxCourts > 0 && len(pool) > maxCourts {
		pool = pool[:maxCourts]
	}
	if len(pool) == 0 {
		pool = append(pool, fallback...)
	}
	return pool
}

// Generate derives one attorney per fixture person, in fixture order.
// Attorney i is assigned to pool[i mod len(pool)].
func Generate(f Fixture, courtIDs []string) []Attorney {
	pool := CourtPool(courtIDs, f.MaxCourts, f.FallbackCourts)

	attorneys := make([]Attorney, 0, len(f.People))
	for i, p := range f.People {
		city := f.Cities[i%len(f.Cities)]

		a := Attorney{
			SeedKey:        fmt.Sprintf("atty-%d", i),
			CourtID:        pool[i%len(pool)],
			BarNumber:      fmt.Sprintf("%s%d", city.State, 10000+i),
			FirstName:      p.First,
			MiddleName:     p.Middle,
			LastName:       p.Last,
			Email:          fmt.Sprintf("%s.%s@example.com", strings.ToLower(p.First), strings.ToLower(p.Last)),
			Phone:          fmt.Sprintf("(555) %03d-%04d", 100+i, 1000+i*7),
			Status:         p.Status,
			Street1:        fmt.Sprintf("%d Federal Plaza", 100+i*10),
			City:           city.City,
			State:          city.State,
			Zip:            city.Zip,
			Country:        "US",
			CJAPanelMember: i%5 == 0,
			CasesHandled:   (i*7 + 3) % 200,
			Languages:      languages(i),
		}

		// Solo practitioners have no firm and no fax line
		if p.Firm != "" {
			firm := p.Firm
			fax := fmt.Sprintf("(555) %03d-%04d", 200+i, 2000+i*7)
			a.FirmName = &firm
			a.Fax = &fax
		}

		attorneys = append(attorneys, a)
	}

	return attorneys
}

func languages(i int) []string {
	langs := []string{"English"}
	if i%4 == 0 {
		langs = append(langs, "Spanish")
	}
	if i%7 == 0 {
		langs = append(langs, "Mandarin")
	}
	return langs
}
