package tickets

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
type MockStore struct {
	mu sync.Mutex

	OpenFunc          func(tk Ticket) error
	GetFunc           func(ticketID string) (*Ticket, error)
	CloseFunc         func(ticketID, closedBy string, at int64) error
	ListOpenFunc      func(guildID string) ([]Ticket, error)
	OpenTicketForFunc func(guildID, userID string, kind Kind) (*Ticket, error)
	SetMessageFunc    func(ticketID, channelID, messageID string) error

	OpenCalls  []Ticket
	CloseCalls []struct {
		TicketID, ClosedBy string
		At                 int64
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OpenCalls = nil
	m.CloseCalls = nil
}

func (m *MockStore) Open(tk Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OpenCalls = append(m.OpenCalls, tk)
	if m.OpenFunc != nil {
		return m.OpenFunc(tk)
	}
	return nil
}

func (m *MockStore) Get(ticketID string) (*Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(ticketID)
	}
	return nil, nil
}

func (m *MockStore) Close(ticketID, closedBy string, at int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls = append(m.CloseCalls, struct {
		TicketID, ClosedBy string
		At                 int64
	}{ticketID, closedBy, at})
	if m.CloseFunc != nil {
		return m.CloseFunc(ticketID, closedBy, at)
	}
	return nil
}

func (m *MockStore) ListOpen(guildID string) ([]Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(guildID)
	}
	return nil, nil
}

func (m *MockStore) OpenTicketFor(guildID, userID string, kind Kind) (*Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OpenTicketForFunc != nil {
		return m.OpenTicketForFunc(guildID, userID, kind)
	}
	return nil, nil
}

func (m *MockStore) SetMessage(ticketID, channelID, messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetMessageFunc != nil {
		return m.SetMessageFunc(ticketID, channelID, messageID)
	}
	return nil
}

func (m *MockStore) Clear() {}
