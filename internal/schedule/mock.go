package schedule

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateGameFunc            func(g Game) error
	GetGameFunc               func(gameID string) (*Game, error)
	ListUpcomingFunc          func(guildID string, from int64, limit int) ([]*Game, error)
	FindAroundFunc            func(guildID string, target, window int64) ([]*Game, error)
	RescheduleFunc            func(gameID string, newStart int64) error
	CancelFunc                func(gameID string) error
	ReportResultFunc          func(gameID string, homeScore, awayScore int) error
	ClaimRefereeSlotFunc      func(gameID, refereeID, refereeName string) (bool, error)
	ReleaseRefereeSlotFunc    func(gameID, refereeID string) error
	SetAnnouncementFunc       func(gameID, channelID, messageID string) error
	UpdateStatusFunc          func(gameID string, status Status) error
	MarkRemindedFunc          func(gameID string, at int64) error
	GetGamesForProcessingFunc func() ([]*Game, error)

	// Call records
	CreateGameCalls []Game
	RescheduleCalls []struct {
		GameID   string
		NewStart int64
	}
	CancelCalls       []string
	ReportResultCalls []struct {
		GameID               string
		HomeScore, AwayScore int
	}
	ClaimRefereeSlotCalls []struct {
		GameID, RefereeID, RefereeName string
	}
	SetAnnouncementCalls []struct {
		GameID, ChannelID, MessageID string
	}
	UpdateStatusCalls []struct {
		GameID string
		Status Status
	}
	MarkRemindedCalls []struct {
		GameID string
		At     int64
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
	m.CreateGameCalls = nil
	m.RescheduleCalls = nil
	m.CancelCalls = nil
	m.ReportResultCalls = nil
	m.ClaimRefereeSlotCalls = nil
	m.SetAnnouncementCalls = nil
	m.UpdateStatusCalls = nil
	m.MarkRemindedCalls = nil
}

func (m *MockStore) CreateGame(g Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateGameCalls = append(m.CreateGameCalls, g)
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(g)
	}
	return nil
}

func (m *MockStore) GetGame(gameID string) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetGameFunc != nil {
		return m.GetGameFunc(gameID)
	}
	return nil, nil
}

func (m *MockStore) ListUpcoming(guildID string, from int64, limit int) ([]*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListUpcomingFunc != nil {
		return m.ListUpcomingFunc(guildID, from, limit)
	}
	return nil, nil
}

func (m *MockStore) FindAround(guildID string, target, window int64) ([]*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindAroundFunc != nil {
		return m.FindAroundFunc(guildID, target, window)
	}
	return nil, nil
}

func (m *MockStore) Reschedule(gameID string, newStart int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RescheduleCalls = append(m.RescheduleCalls, struct {
		GameID   string
		NewStart int64
	}{gameID, newStart})
	if m.RescheduleFunc != nil {
		return m.RescheduleFunc(gameID, newStart)
	}
	return nil
}

func (m *MockStore) Cancel(gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelCalls = append(m.CancelCalls, gameID)
	if m.CancelFunc != nil {
		return m.CancelFunc(gameID)
	}
	return nil
}

func (m *MockStore) ReportResult(gameID string, homeScore, awayScore int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReportResultCalls = append(m.ReportResultCalls, struct {
		GameID               string
		HomeScore, AwayScore int
	}{gameID, homeScore, awayScore})
	if m.ReportResultFunc != nil {
		return m.ReportResultFunc(gameID, homeScore, awayScore)
	}
	return nil
}

func (m *MockStore) ClaimRefereeSlot(gameID, refereeID, refereeName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClaimRefereeSlotCalls = append(m.ClaimRefereeSlotCalls, struct {
		GameID, RefereeID, RefereeName string
	}{gameID, refereeID, refereeName})
	if m.ClaimRefereeSlotFunc != nil {
		return m.ClaimRefereeSlotFunc(gameID, refereeID, refereeName)
	}
	return true, nil
}

func (m *MockStore) ReleaseRefereeSlot(gameID, refereeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReleaseRefereeSlotFunc != nil {
		return m.ReleaseRefereeSlotFunc(gameID, refereeID)
	}
	return nil
}

func (m *MockStore) SetAnnouncement(gameID, channelID, messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetAnnouncementCalls = append(m.SetAnnouncementCalls, struct {
		GameID, ChannelID, MessageID string
	}{gameID, channelID, messageID})
	if m.SetAnnouncementFunc != nil {
		return m.SetAnnouncementFunc(gameID, channelID, messageID)
	}
	return nil
}

func (m *MockStore) UpdateStatus(gameID string, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatusCalls = append(m.UpdateStatusCalls, struct {
		GameID string
		Status Status
	}{gameID, status})
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(gameID, status)
	}
	return nil
}

func (m *MockStore) MarkReminded(gameID string, at int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MarkRemindedCalls = append(m.MarkRemindedCalls, struct {
		GameID string
		At     int64
	}{gameID, at})
	if m.MarkRemindedFunc != nil {
		return m.MarkRemindedFunc(gameID, at)
	}
	return nil
}

func (m *MockStore) GetGamesForProcessing() ([]*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetGamesForProcessingFunc != nil {
		return m.GetGamesForProcessingFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {}
