package score

import "strconv"

// MemoryStore keeps scores in process memory. Values are held as text
// so that corrupt entries can be represented.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (int, error) {
	raw, ok := m.values[key]
	if !ok {
		return 0, ErrNotFound
	}
	return parseValue(raw)
}

func (m *MemoryStore) Set(key string, value int) error {
	m.values[key] = strconv.Itoa(value)
	return nil
}

// SetRaw stores an arbitrary text value under key
func (m *MemoryStore) SetRaw(key, raw string) {
	m.values[key] = raw
}
