package domain

// OtherKey is the escape-hatch domain. It still has a registry entry so the
// info panel has something to show when the user picks it.
const OtherKey = "Other"

// Entry describes what an SRS for a given industry domain must cover.
type Entry struct {
	Title     string   `json:"title"`
	Standards []string `json:"standards"`
	Sections  []string `json:"sections"`
	Note      string   `json:"note"`
}

// Registry is a read-only lookup table of domain entries.
type Registry struct {
	order   []string
	entries map[string]Entry
}

// NewRegistry builds a registry from keys in display order. Keys listed in
// order but missing from entries are ignored.
func NewRegistry(order []string, entries map[string]Entry) *Registry {
	r := &Registry{
		order:   make([]string, 0, len(order)),
		entries: make(map[string]Entry, len(entries)),
	}
	for _, key := range order {
		e, ok := entries[key]
		if !ok {
			continue
		}
		r.order = append(r.order, key)
		r.entries[key] = e.clone()
	}
	return r
}

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// Lookup returns a copy of the entry for key.
func (r *Registry) Lookup(key string) (Entry, bool) {
	e, ok := r.entries[key]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Keys returns the registered keys in display order, "Other" last.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (e Entry) clone() Entry {
	return Entry{
		Title:     e.Title,
		Standards: append([]string(nil), e.Standards...),
		Sections:  append([]string(nil), e.Sections...),
		Note:      e.Note,
	}
}
