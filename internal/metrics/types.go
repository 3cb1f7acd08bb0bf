package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	CommandsHandled    prometheus.Counter
	GamesProcessed     prometheus.Counter
	ProcessingDuration prometheus.Histogram
	DiscordNotifSent   prometheus.Counter
	DiscordNotifFailed prometheus.Counter
	RateLimited        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
