package blacklist

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
type MockStore struct {
	mu sync.Mutex

	AddFunc      func(e Entry) error
	RemoveFunc   func(guildID, subjectID string) error
	ListFunc     func(guildID string) ([]Entry, error)
	IsListedFunc func(guildID, subjectID string) bool

	AddCalls    []Entry
	RemoveCalls []struct{ GuildID, SubjectID string }
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls = nil
	m.RemoveCalls = nil
}

func (m *MockStore) Add(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls = append(m.AddCalls, e)
	if m.AddFunc != nil {
		return m.AddFunc(e)
	}
	return nil
}

func (m *MockStore) Remove(guildID, subjectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, struct{ GuildID, SubjectID string }{guildID, subjectID})
	if m.RemoveFunc != nil {
		return m.RemoveFunc(guildID, subjectID)
	}
	return nil
}

func (m *MockStore) List(guildID string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(guildID)
	}
	return nil, nil
}

func (m *MockStore) IsListed(guildID, subjectID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.IsListedFunc != nil {
		return m.IsListedFunc(guildID, subjectID)
	}
	return false
}

func (m *MockStore) Clear() {}
