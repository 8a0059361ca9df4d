package capability

import "iter"

// Registry is an insertion-ordered mapping from capability key to
// Capability. It is plain in-memory bookkeeping with no error conditions;
// the catalog is built once at startup and never mutated afterwards.
type Registry struct {
	keys []rune
	caps map[rune]Capability
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{caps: make(map[rune]Capability)}
}

// Insert appends the capability to the ordered mapping, keyed by its Key.
// Repeating a key overwrites the stored capability in place without
// changing its position; callers are trusted to use unique keys.
func (r *Registry) Insert(c Capability) {
	if _, exists := r.caps[c.Key]; !exists {
		r.keys = append(r.keys, c.Key)
	}
	r.caps[c.Key] = c
}

// Lookup returns the capability for key. The second return value reports
// whether the key is present; absent keys are an expected condition used by
// callers to filter, never a panic.
func (r *Registry) Lookup(key rune) (Capability, bool) {
	c, ok := r.caps[key]
	return c, ok
}

// Len returns the number of registered capabilities.
func (r *Registry) Len() int {
	return len(r.keys)
}

// All iterates capabilities in insertion order. The sequence is finite and
// restartable.
func (r *Registry) All() iter.Seq[Capability] {
	return func(yield func(Capability) bool) {
		for _, k := range r.keys {
			if !yield(r.caps[k]) {
				return
			}
		}
	}
}

// Filter returns a new registry holding only the capabilities whose keys
// appear in letters, preserving this registry's order (not the order of the
// letters). Unknown letters are ignored.
func (r *Registry) Filter(letters string) *Registry {
	present := make(map[rune]bool, len(letters))
	for _, ch := range letters {
		present[ch] = true
	}

	filtered := NewRegistry()
	for c := range r.All() {
		if present[c.Key] {
			filtered.Insert(c)
		}
	}
	return filtered
}
