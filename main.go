package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"pitchside/internal/blacklist"
	"pitchside/internal/bot"
	"pitchside/internal/config"
	"pitchside/internal/dashboard"
	"pitchside/internal/database"
	server "pitchside/internal/http"
	"pitchside/internal/league"
	"pitchside/internal/metrics"
	"pitchside/internal/notifier/discord"
	"pitchside/internal/processor"
	"pitchside/internal/schedule"
	"pitchside/internal/settings"
	"pitchside/internal/tickets"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	leagueStore := league.New(db)
	gameStore := schedule.New(db)
	blacklistStore := blacklist.New(db)
	ticketStore := tickets.New(db)
	settingsStore := settings.New(db)
	dashboards := dashboard.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	metricsStore := metrics.New(db)

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %s", err)
	}
	notifier := discord.NewNotifier(session, metricsSvc)
	proc := processor.New(gameStore, leagueStore, settingsStore, dashboards, notifier, metricsSvc)

	discordBot := bot.New(
		session,
		bot.Config{
			AppID:     cfg.Discord.AppID,
			GuildID:   cfg.Discord.GuildID,
			DefaultTZ: cfg.DefaultTimezone,
		},
		leagueStore,
		gameStore,
		blacklistStore,
		ticketStore,
		settingsStore,
		notifier,
		metricsSvc,
		metricsStore,
	)
	if err := discordBot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %s", err)
	}
	defer func() {
		log.Info("Closing Discord session")
		if err := discordBot.Stop(); err != nil {
			log.Error("Failed to close Discord session", "error", err)
		}
	}()

	// The processing pipeline runs on a schedule rather than per event.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ProcessSpec, func() { proc.ProcessGames(false) }); err != nil {
		log.Fatalf("Failed to schedule game processing: %s", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Prune idle per-user rate limiters in the background.
	sweeper := time.NewTicker(10 * time.Minute)
	defer sweeper.Stop()
	go func() {
		for range sweeper.C {
			discordBot.SweepLimiter()
		}
	}()

	s := server.NewServer(
		leagueStore,
		gameStore,
		ticketStore,
		metricsSvc,
		metricsHandler,
		metricsStore,
		cfg,
		notifier,
		proc,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
