package court

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// ErrInvalidTables is returned when a tables document is missing required entries
var ErrInvalidTables = errors.New("invalid court tables")

// Qualifier maps a name fragment to its abbreviation
type Qualifier struct {
	Name   string `yaml:"name"`
	Abbrev string `yaml:"abbrev"`
}

// Tables holds the ordered lookup tables used by the resolver.
// Slice order is the tie-break: the first matching entry wins.
type Tables struct {
	Prefixes   []string    `yaml:"prefixes"`
	Directions []Qualifier `yaml:"directions"`
	Regions    []Qualifier `yaml:"regions"`
}

// DefaultTables decodes the embedded tables (6 directions, 55 regions)
func DefaultTables() (Tables, error) {
	return decodeTables(defaultTablesYAML)
}

// LoadTables reads a tables document with the same schema as the embedded one
func LoadTables(r io.Reader) (Tables, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read court tables: %w", err)
	}
	return decodeTables(data)
}

// LoadTablesFile loads tables from path, or the embedded defaults when path is empty
func LoadTablesFile(path string) (Tables, error) {
	if path == "" {
		return DefaultTables()
	}

	file, err := os.Open(path)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to open court tables %s: %w", path, err)
	}
	defer file.Close()

	return LoadTables(file)
}

func decodeTables(data []byte) (Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("failed to decode court tables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// Validate checks every table is present and no entry is blank
func (t Tables) Validate() error {
	if len(t.Regions) == 0 {
		return fmt.Errorf("%w: no regions", ErrInvalidTables)
	}
	for i, p := range t.Prefixes {
		if p == "" {
			return fmt.Errorf("%w: prefix %d is empty", ErrInvalidTables, i)
		}
	}
	for _, q := range t.Directions {
		if q.Name == "" || q.Abbrev == "" {
			return fmt.Errorf("%w: incomplete direction %+v", ErrInvalidTables, q)
		}
	}
	for _, q := range t.Regions {
		if q.Name == "" || q.Abbrev == "" {
			return fmt.Errorf("%w: incomplete region %+v", ErrInvalidTables, q)
		}
	}
	return nil
}
