package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CommandsHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_commands_handled_total",
			Help: "The total number of slash commands handled.",
		}),
		GamesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_games_processed_total",
			Help: "The total number of games processed by the state machine.",
		}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "league_game_processing_duration_seconds",
			Help:    "The duration of individual game processing.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		DiscordNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_discord_notifications_sent_total",
			Help: "The total number of Discord notifications successfully sent.",
		}),
		DiscordNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_discord_notifications_failed_total",
			Help: "The total number of Discord notifications that failed to send.",
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_commands_rate_limited_total",
			Help: "The total number of commands rejected by the per-user rate limiter.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "league_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.CommandsHandled,
		s.GamesProcessed,
		s.ProcessingDuration,
		s.DiscordNotifSent,
		s.DiscordNotifFailed,
		s.RateLimited,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncCommandsHandled() {
	s.CommandsHandled.Inc()
}

func (s *Service) IncGamesProcessed() {
	s.GamesProcessed.Inc()
}

func (s *Service) ObserveProcessingDuration(duration float64) {
	s.ProcessingDuration.Observe(duration)
}

func (s *Service) IncDiscordNotifSent() {
	s.DiscordNotifSent.Inc()
}

func (s *Service) IncDiscordNotifFailed() {
	s.DiscordNotifFailed.Inc()
}

func (s *Service) IncRateLimited() {
	s.RateLimited.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
