package processor

import (
	"time"

	"pitchside/internal/dashboard"
	"pitchside/internal/metrics"
)

// Processor handles the business logic of advancing games through their lifecycle.
type Processor struct {
	games      GameStore
	league     LeagueStore
	settings   SettingsStore
	dashboards dashboard.Store
	notifier   Notifier
	metrics    metrics.Metrics
	now        func() time.Time
}
