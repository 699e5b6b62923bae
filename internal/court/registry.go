package court

import (
	"fmt"
	"sort"
)

// TypeDistrict is the only court type this generator emits
const TypeDistrict = "district"

// Court is one entry of the courts table
type Court struct {
	ID   string
	Name string
	Type string
}

// Ref is a reference from a surviving judge to the court it sits in
type Ref struct {
	ID       string
	FullName string
}

// Registry is the set of courts referenced by at least one judge.
// It is read-only once built.
type Registry struct {
	courts map[string]Court
	ids    []string
}

// BuildRegistry collects the distinct courts in refs. The first reference to
// a court supplies its display name.
func BuildRegistry(refs []Ref) *Registry {
	courts := make(map[string]Court)
	for _, ref := range refs {
		if ref.ID == "" {
			continue
		}
		if _, exists := courts[ref.ID]; exists {
			continue
		}

		name := ref.FullName
		if name == "" {
			name = fmt.Sprintf("U.S. District Court (%s)", ref.ID)
		}
		courts[ref.ID] = Court{ID: ref.ID, Name: name, Type: TypeDistrict}
	}

	ids := make([]string, 0, len(courts))
	for id := range courts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Registry{courts: courts, ids: ids}
}

// Len returns the number of courts
func (r *Registry) Len() int {
	return len(r.ids)
}

// IDs returns the court ids in ascending order
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Courts returns the courts sorted by id
func (r *Registry) Courts() []Court {
	out := make([]Court, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.courts[id])
	}
	return out
}

// Lookup finds a court by id
func (r *Registry) Lookup(id string) (Court, bool) {
	c, ok := r.courts[id]
	return c, ok
}
