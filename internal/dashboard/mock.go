package dashboard

import "sync"

// MockStore is an in-memory implementation of the Store interface for testing.
type MockStore struct {
	mu   sync.Mutex
	rows map[string]Dashboard

	SaveCalls []Dashboard
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{rows: make(map[string]Dashboard)}
}

// Reset clears all stored rows and call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = make(map[string]Dashboard)
	m.SaveCalls = nil
}

func key(guildID string, kind Kind) string {
	return guildID + "/" + string(kind)
}

func (m *MockStore) Get(guildID string, kind Kind) (*Dashboard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.rows[key(guildID, kind)]; ok {
		return &d, nil
	}
	return nil, nil
}

func (m *MockStore) Save(d Dashboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, d)
	m.rows[key(d.GuildID, d.Kind)] = d
	return nil
}

func (m *MockStore) Delete(guildID string, kind Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, key(guildID, kind))
	return nil
}

func (m *MockStore) Clear() {
	m.Reset()
}
