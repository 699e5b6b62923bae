package normalize

import (
	"strings"
)

// DefaultTitle is used when no title rule matches
const DefaultTitle = "Judge"

// TitleRule maps any raw title containing Contains onto Title
type TitleRule struct {
	Contains string
	Title    string
}

// StatusFacts are the raw fields status resolution looks at
type StatusFacts struct {
	Termination      string
	SeniorStatusDate string
}

// StatusRule assigns Status when Applies reports true
type StatusRule struct {
	Name    string
	Status  Status
	Applies func(StatusFacts) bool
}

// PositionRule picks a candidate position from a person's history
type PositionRule struct {
	Name    string
	Matches func(Position) bool
}

// Rules bundles the ordered rule lists. Every list is evaluated front to
// back and the first matching rule wins.
type Rules struct {
	Titles    []TitleRule
	Statuses  []StatusRule
	Positions []PositionRule
}

// DefaultRules returns a fresh copy of the standard rule lists
func DefaultRules() Rules {
	return Rules{
		Titles: []TitleRule{
			{Contains: "Chief", Title: "Chief Judge"},
			{Contains: "Magistrate", Title: "Magistrate Judge"},
			{Contains: "Senior", Title: "Senior Judge"},
		},
		Statuses: []StatusRule{
			{
				Name:   "retired",
				Status: StatusRetired,
				Applies: func(f StatusFacts) bool {
					return f.Termination == "Retirement"
				},
			},
			{
				Name:   "senior",
				Status: StatusSenior,
				Applies: func(f StatusFacts) bool {
					return f.SeniorStatusDate != ""
				},
			},
		},
		Positions: []PositionRule{
			{
				Name: "open magistrate position",
				Matches: func(p Position) bool {
					return p.open() && strings.Contains(p.title(), "Magistrate")
				},
			},
			{
				Name: "open non-bankruptcy position",
				Matches: func(p Position) bool {
					return p.open() && !strings.Contains(p.title(), "Bankruptcy")
				},
			},
		},
	}
}

// ResolveTitle maps a raw appointment title onto a canonical title
func ResolveTitle(raw string, rules []TitleRule) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return DefaultTitle
	}
	for _, rule := range rules {
		if strings.Contains(t, rule.Contains) {
			return rule.Title
		}
	}
	return DefaultTitle
}

// ResolveStatus returns the status of the first applicable rule, or Active
func ResolveStatus(facts StatusFacts, rules []StatusRule) Status {
	facts.Termination = strings.TrimSpace(facts.Termination)
	facts.SeniorStatusDate = strings.TrimSpace(facts.SeniorStatusDate)
	for _, rule := range rules {
		if rule.Applies(facts) {
			return rule.Status
		}
	}
	return StatusActive
}

// SelectPosition applies rules in order; within a rule the earliest matching
// position wins
func SelectPosition(positions []Position, rules []PositionRule) (Position, bool) {
	for _, rule := range rules {
		for _, p := range positions {
			if rule.Matches(p) {
				return p, true
			}
		}
	}
	return Position{}, false
}
