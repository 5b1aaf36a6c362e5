package store

import "context"

// Memory is an in-memory Store used by tests and one-shot CLI runs that
// should not touch the on-disk snapshot.
type Memory struct {
	values map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	buf := make([]byte, len(value))
	copy(buf, value)
	m.values[key] = buf
	return nil
}

func (m *Memory) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}
