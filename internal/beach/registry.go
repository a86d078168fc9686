package beach

import (
	"sort"
	"strings"
)

// Registry is an in-memory index over the static beach table. Lookups are
// read-only after construction so no locking is needed.
type Registry struct {
	bySlug map[string]Beach
	byName map[string]Beach
	order  []string
}

// NewRegistry builds the index from the compiled-in table.
func NewRegistry() *Registry {
	r := &Registry{
		bySlug: make(map[string]Beach, len(beaches)),
		byName: make(map[string]Beach, len(beaches)),
		order:  make([]string, 0, len(beaches)),
	}
	for _, b := range beaches {
		r.bySlug[b.Slug] = b
		r.byName[strings.ToLower(b.Name)] = b
		r.order = append(r.order, b.Slug)
	}
	return r
}

// Get returns the beach for a slug, or ErrNotFound.
func (r *Registry) Get(slug string) (Beach, error) {
	b, ok := r.bySlug[slug]
	if !ok {
		return Beach{}, ErrNotFound
	}
	return b, nil
}

// All returns every beach in table order.
func (r *Registry) All() []Beach {
	out := make([]Beach, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.bySlug[slug])
	}
	return out
}

// Slugs returns every slug in table order.
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Regions returns the distinct region identifiers, sorted.
func (r *Registry) Regions() []string {
	seen := map[string]struct{}{}
	for _, b := range r.bySlug {
		seen[b.Region] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for reg := range seen {
		out = append(out, reg)
	}
	sort.Strings(out)
	return out
}

// ByRegion returns the beaches in a region, in table order.
func (r *Registry) ByRegion(region string) []Beach {
	var out []Beach
	for _, slug := range r.order {
		if b := r.bySlug[slug]; b.Region == region {
			out = append(out, b)
		}
	}
	return out
}

// Len reports the number of beaches in the table.
func (r *Registry) Len() int {
	return len(r.order)
}
