package sheet

// Fields is an insertion-ordered string-to-string map used for base fields,
// custom properties, and override payloads.
type Fields struct {
	keys   []string
	values map[string]string
}

func NewFields() *Fields {
	return &Fields{values: make(map[string]string)}
}

func (f *Fields) Len() int {
	return len(f.keys)
}

// Keys returns the field names in insertion order.
func (f *Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

func (f *Fields) Get(key string) (string, bool) {
	value, ok := f.values[key]
	return value, ok
}

// Value returns the value for key, or "" if absent.
func (f *Fields) Value(key string) string {
	return f.values[key]
}

func (f *Fields) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f *Fields) Set(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Clone returns an independent copy preserving insertion order.
func (f *Fields) Clone() *Fields {
	out := NewFields()
	if f == nil {
		return out
	}
	for _, key := range f.keys {
		out.Set(key, f.values[key])
	}
	return out
}

// Equal reports whether two field maps hold the same pairs, ignoring order.
func (f *Fields) Equal(other *Fields) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.keys) != len(other.keys) {
		return false
	}
	for key, value := range f.values {
		if got, ok := other.values[key]; !ok || got != value {
			return false
		}
	}
	return true
}
