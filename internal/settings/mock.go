package settings

import "sync"

// MockStore is an in-memory implementation of the Store interface for testing.
type MockStore struct {
	mu     sync.Mutex
	values map[string]map[string]string

	SetCalls []struct{ GuildID, Key, Value string }
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{values: make(map[string]map[string]string)}
}

// Reset clears all stored values and call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]map[string]string)
	m.SetCalls = nil
}

func (m *MockStore) Get(guildID, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[guildID][key]; ok {
		return v, nil
	}
	return "", errNotSet(key)
}

func (m *MockStore) GetOr(guildID, key, fallback string) string {
	if v, err := m.Get(guildID, key); err == nil {
		return v
	}
	return fallback
}

func (m *MockStore) Set(guildID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, struct{ GuildID, Key, Value string }{guildID, key, value})
	if m.values[guildID] == nil {
		m.values[guildID] = make(map[string]string)
	}
	m.values[guildID][key] = value
	return nil
}

func (m *MockStore) Delete(guildID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[guildID][key]; !ok {
		return errNotSet(key)
	}
	delete(m.values[guildID], key)
	return nil
}

func (m *MockStore) All(guildID string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values[guildID]))
	for k, v := range m.values[guildID] {
		out[k] = v
	}
	return out, nil
}

func (m *MockStore) Clear() {
	m.Reset()
}

type errNotSet string

func (e errNotSet) Error() string { return "setting " + string(e) + " not set" }
