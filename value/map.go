package value

// Entry is one key/value pair of a Map.
type Entry struct {
	Key any
	Val any
}

// Map is an insertion-ordered mapping with keys compared by Equal.
// It stays mutable after being handed out so deferred fixups can
// rebind entries for cyclic documents; callers should treat a Map
// received from an in-progress construction as settling only once the
// top-level document call returns.
type Map struct {
	entries []Entry
}

func NewMap() *Map {
	return &Map{}
}

func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns the backing entry slice in insertion order. The
// slice is shared, not copied.
func (m *Map) Entries() []Entry {
	return m.entries
}

func (m *Map) Get(key any) (any, bool) {
	for i := range m.entries {
		if Equal(m.entries[i].Key, key) {
			return m.entries[i].Val, true
		}
	}
	return nil, false
}

func (m *Map) Has(key any) bool {
	_, ok := m.Get(key)
	return ok
}

// Set binds key to val, replacing the value of an existing equal key
// in place, otherwise appending a new entry.
func (m *Map) Set(key, val any) {
	for i := range m.entries {
		if Equal(m.entries[i].Key, key) {
			m.entries[i].Val = val
			return
		}
	}
	m.entries = append(m.entries, Entry{Key: key, Val: val})
}

func (m *Map) Delete(key any) bool {
	for i := range m.entries {
		if Equal(m.entries[i].Key, key) {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) Keys() []any {
	res := make([]any, len(m.entries))
	for i := range m.entries {
		res[i] = m.entries[i].Key
	}
	return res
}
