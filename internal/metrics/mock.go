package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	commandsHandled     int
	gamesProcessed      int
	processingDurations []float64
	discordNotifSent    int
	discordNotifFailed  int
	rateLimited         int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		processingDurations: make([]float64, 0),
	}
}

func (m *Mock) IncCommandsHandled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsHandled++
}

func (m *Mock) IncGamesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesProcessed++
}

func (m *Mock) ObserveProcessingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processingDurations = append(m.processingDurations, duration)
}

func (m *Mock) IncDiscordNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discordNotifSent++
}

func (m *Mock) IncDiscordNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discordNotifFailed++
}

func (m *Mock) IncRateLimited() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rateLimited++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// CommandsHandled returns the number of times IncCommandsHandled was called.
func (m *Mock) CommandsHandled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandsHandled
}

// GamesProcessed returns the number of times IncGamesProcessed was called.
func (m *Mock) GamesProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesProcessed
}

// DiscordNotifSent returns the number of times IncDiscordNotifSent was called.
func (m *Mock) DiscordNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.discordNotifSent
}

// DiscordNotifFailed returns the number of times IncDiscordNotifFailed was called.
func (m *Mock) DiscordNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.discordNotifFailed
}

// RateLimited returns the number of times IncRateLimited was called.
func (m *Mock) RateLimited() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rateLimited
}

// MockStore is an in-memory implementation of the MetricsStore interface for testing.
type MockStore struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewMockStore creates a new mock counter store.
func NewMockStore() *MockStore {
	return &MockStore{counters: make(map[string]int)}
}

func (m *MockStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
}

func (m *MockStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out, nil
}

// Count returns the current value of a single counter.
func (m *MockStore) Count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key]
}
