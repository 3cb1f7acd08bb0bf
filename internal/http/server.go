package http

import (
	"net/http"

	"pitchside/internal/config"
	"pitchside/internal/league"
	"pitchside/internal/metrics"
	"pitchside/internal/notifier"
	"pitchside/internal/processor"
	"pitchside/internal/schedule"
	"pitchside/internal/tickets"
)

func NewServer(
	leagueStore league.Store,
	gameStore schedule.Store,
	ticketStore tickets.Store,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	metricsStore metrics.MetricsStore,
	cfg config.Config,
	notifier notifier.Notifier,
	processor *processor.Processor,
) *Server {
	server := &Server{
		League:         leagueStore,
		Games:          gameStore,
		Tickets:        ticketStore,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		MetricsStore:   metricsStore,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/teams", Chain(s.ListTeamsHandler(), paramsMiddleware))
	s.Router.Handle("/games", Chain(s.ListGamesHandler(), paramsMiddleware))
	s.Router.Handle("/tickets", Chain(s.ListTicketsHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/counters", Chain(s.CountersHandler(), paramsMiddleware))
	s.Router.Handle("/process", Chain(s.ProcessGamesHandler(), paramsMiddleware))
	s.Router.Handle("/dashboards/refresh", Chain(s.RefreshDashboardsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
