package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// guildParam resolves the guild a request is scoped to, falling back to the
// guild the bot is registered in.
func (s *Server) guildParam(r *http.Request) string {
	if guildID := r.URL.Query().Get("guild_id"); guildID != "" {
		return guildID
	}
	return s.Cfg.Discord.GuildID
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear all stores")
		s.League.Clear()
		s.Games.Clear()
		s.Tickets.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Stores cleared!")
		log.Info("Stores cleared successfully")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.League.ListPlayers(s.guildParam(r))
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		respondJSON(w, players)
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.League.ListTeams(s.guildParam(r))
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}
		respondJSON(w, teams)
	}
}

func (s *Server) ListGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.Games.ListUpcoming(s.guildParam(r), time.Now().Unix(), 50)
		if err != nil {
			http.Error(w, "Failed to get games", http.StatusInternalServerError)
			log.Error("Failed to get games from store", "error", err)
			return
		}
		respondJSON(w, games)
	}
}

func (s *Server) ListTicketsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		open, err := s.Tickets.ListOpen(s.guildParam(r))
		if err != nil {
			http.Error(w, "Failed to get tickets", http.StatusInternalServerError)
			log.Error("Failed to get tickets from store", "error", err)
			return
		}
		respondJSON(w, open)
	}
}

// LeaderboardHandler returns a handler that serves the player statistics leaderboard.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.League.GetLeaderboard(s.guildParam(r))
		if err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player stats from store", "error", err)
			return
		}
		respondJSON(w, stats)
	}
}

// CountersHandler exposes the persisted usage counters.
func (s *Server) CountersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counters, err := s.MetricsStore.GetAll()
		if err != nil {
			http.Error(w, "Failed to get counters", http.StatusInternalServerError)
			log.Error("Failed to get counters from store", "error", err)
			return
		}
		respondJSON(w, counters)
	}
}

func (s *Server) ProcessGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting game processing...")
		isDryRun := isDryRunFromContext(r)

		s.Processor.ProcessGames(isDryRun)

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Game processing completed.")
		log.Info("Game processing finished.")
	}
}

func (s *Server) RefreshDashboardsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := s.guildParam(r)
		if guildID == "" {
			http.Error(w, "guild_id is required", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		s.Processor.RefreshDashboards(guildID, isDryRun)

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Dashboards refreshed.")
	}
}
