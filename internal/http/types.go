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

type Server struct {
	League         league.Store
	Games          schedule.Store
	Tickets        tickets.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	MetricsStore   metrics.MetricsStore
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
}
