package frontmatter

// Map is an insertion-ordered field map. Each key holds either a scalar
// value or a nested Map of scalars, never both.
type Map struct {
	keys    []string
	scalars map[string]string
	nested  map[string]*Map
}

func NewMap() *Map {
	return &Map{
		scalars: make(map[string]string),
		nested:  make(map[string]*Map),
	}
}

func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the field names in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *Map) Get(key string) (string, bool) {
	value, ok := m.scalars[key]
	return value, ok
}

func (m *Map) Nested(key string) (*Map, bool) {
	nested, ok := m.nested[key]
	return nested, ok
}

// Set stores a scalar value, replacing any nested map stored under key.
func (m *Map) Set(key, value string) {
	m.track(key)
	delete(m.nested, key)
	m.scalars[key] = value
}

// SetNested stores a nested map, replacing any scalar stored under key.
func (m *Map) SetNested(key string, nested *Map) {
	if nested == nil {
		nested = NewMap()
	}
	m.track(key)
	delete(m.scalars, key)
	m.nested[key] = nested
}

func (m *Map) Delete(key string) {
	if _, scalar := m.scalars[key]; !scalar {
		if _, nest := m.nested[key]; !nest {
			return
		}
	}
	delete(m.scalars, key)
	delete(m.nested, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Equal reports whether two maps hold the same fields, ignoring order.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for key, value := range m.scalars {
		if got, ok := other.scalars[key]; !ok || got != value {
			return false
		}
	}
	for key, nested := range m.nested {
		got, ok := other.nested[key]
		if !ok || !nested.Equal(got) {
			return false
		}
	}
	return true
}

func (m *Map) track(key string) {
	if _, scalar := m.scalars[key]; scalar {
		return
	}
	if _, nest := m.nested[key]; nest {
		return
	}
	m.keys = append(m.keys, key)
}
