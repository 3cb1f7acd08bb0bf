package league

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayerFunc         func(p Player) error
	GetPlayerFunc            func(playerID string) (*Player, error)
	ListPlayersFunc          func(guildID string) ([]Player, error)
	IsKnownPlayerFunc        func(playerID string) bool
	CreateTeamFunc           func(t Team) error
	DisbandTeamFunc          func(teamID string) error
	GetTeamFunc              func(teamID string) (*Team, error)
	GetTeamByNameFunc        func(guildID, name string) (*Team, error)
	ListTeamsFunc            func(guildID string) ([]Team, error)
	AddToRosterFunc          func(teamID, playerID string) error
	RemoveFromRosterFunc     func(teamID, playerID string) error
	GetRosterFunc            func(teamID string) ([]RosterEntry, error)
	RecordGameResultFunc     func(outcome GameOutcome) error
	GetLeaderboardFunc       func(guildID string) ([]PlayerStats, error)
	GetPlayerStatsByNameFunc func(guildID, playerName string) (*PlayerStats, error)

	// Call records
	UpsertPlayerCalls     []Player
	CreateTeamCalls       []Team
	RecordGameResultCalls []GameOutcome
	AddToRosterCalls      []struct{ TeamID, PlayerID string }
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayerCalls = nil
	m.CreateTeamCalls = nil
	m.RecordGameResultCalls = nil
	m.AddToRosterCalls = nil
}

func (m *MockStore) UpsertPlayer(p Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayerCalls = append(m.UpsertPlayerCalls, p)
	if m.UpsertPlayerFunc != nil {
		return m.UpsertPlayerFunc(p)
	}
	return nil
}

func (m *MockStore) GetPlayer(playerID string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) ListPlayers(guildID string) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(guildID)
	}
	return nil, nil
}

func (m *MockStore) IsKnownPlayer(playerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.IsKnownPlayerFunc != nil {
		return m.IsKnownPlayerFunc(playerID)
	}
	return false
}

func (m *MockStore) CreateTeam(t Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateTeamCalls = append(m.CreateTeamCalls, t)
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(t)
	}
	return nil
}

func (m *MockStore) DisbandTeam(teamID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DisbandTeamFunc != nil {
		return m.DisbandTeamFunc(teamID)
	}
	return nil
}

func (m *MockStore) GetTeam(teamID string) (*Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) GetTeamByName(guildID, name string) (*Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamByNameFunc != nil {
		return m.GetTeamByNameFunc(guildID, name)
	}
	return nil, nil
}

func (m *MockStore) ListTeams(guildID string) ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(guildID)
	}
	return nil, nil
}

func (m *MockStore) AddToRoster(teamID, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddToRosterCalls = append(m.AddToRosterCalls, struct{ TeamID, PlayerID string }{teamID, playerID})
	if m.AddToRosterFunc != nil {
		return m.AddToRosterFunc(teamID, playerID)
	}
	return nil
}

func (m *MockStore) RemoveFromRoster(teamID, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveFromRosterFunc != nil {
		return m.RemoveFromRosterFunc(teamID, playerID)
	}
	return nil
}

func (m *MockStore) GetRoster(teamID string) ([]RosterEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRosterFunc != nil {
		return m.GetRosterFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) RecordGameResult(outcome GameOutcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordGameResultCalls = append(m.RecordGameResultCalls, outcome)
	if m.RecordGameResultFunc != nil {
		return m.RecordGameResultFunc(outcome)
	}
	return nil
}

func (m *MockStore) GetLeaderboard(guildID string) ([]PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(guildID)
	}
	return nil, nil
}

func (m *MockStore) GetPlayerStatsByName(guildID, playerName string) (*PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerStatsByNameFunc != nil {
		return m.GetPlayerStatsByNameFunc(guildID, playerName)
	}
	return nil, nil
}

func (m *MockStore) Clear() {}
