package league

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new league Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// UpsertPlayer inserts a new player or refreshes an existing one's details.
func (s *store) UpsertPlayer(p Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO players (id, guild_id, name, position, jersey_number, registered_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			position = excluded.position,
			jersey_number = excluded.jersey_number;
	`, p.ID, p.GuildID, p.Name, p.Position, p.JerseyNumber, p.RegisteredAt)
	if err != nil {
		log.Error("Failed to upsert player", "error", err, "playerID", p.ID)
		return err
	}
	log.Debug("Upserted player", "playerID", p.ID, "name", p.Name)
	return nil
}

func (s *store) GetPlayer(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	var position sql.NullString
	var jersey sql.NullInt64
	err := s.db.QueryRow(`
		SELECT id, guild_id, name, position, jersey_number, registered_at
		FROM players WHERE id = ?
	`, playerID).Scan(&p.ID, &p.GuildID, &p.Name, &position, &jersey, &p.RegisteredAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("player %s not found", playerID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	p.Position = position.String
	p.JerseyNumber = int(jersey.Int64)
	return &p, nil
}

func (s *store) ListPlayers(guildID string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, guild_id, name, position, jersey_number, registered_at
		FROM players WHERE guild_id = ? ORDER BY name
	`, guildID)
	if err != nil {
		log.Error("Failed to query players", "error", err, "guildID", guildID)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		var position sql.NullString
		var jersey sql.NullInt64
		if err := rows.Scan(&p.ID, &p.GuildID, &p.Name, &position, &jersey, &p.RegisteredAt); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		p.Position = position.String
		p.JerseyNumber = int(jersey.Int64)
		players = append(players, p)
	}
	return players, nil
}

func (s *store) IsKnownPlayer(playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "playerID", playerID)
		return false
	}
	return exists
}

func (s *store) CreateTeam(t Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM teams WHERE guild_id = ? AND name = ? COLLATE NOCASE)",
		t.GuildID, t.Name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if exists {
		return fmt.Errorf("team %q already exists", t.Name)
	}

	var captain any
	if t.CaptainID != "" {
		captain = t.CaptainID
	}
	_, err = s.db.Exec(`
		INSERT INTO teams (id, guild_id, name, tag, captain_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, t.ID, t.GuildID, t.Name, t.Tag, captain, t.CreatedAt)
	if err != nil {
		log.Error("Failed to create team", "error", err, "team", t.Name)
		return err
	}
	log.Info("Created team", "teamID", t.ID, "name", t.Name)
	return nil
}

// DisbandTeam removes the team; roster rows go with it via ON DELETE CASCADE.
func (s *store) DisbandTeam(teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM teams WHERE id = ?", teamID)
	if err != nil {
		log.Error("Failed to disband team", "error", err, "teamID", teamID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("team %s not found", teamID)
	}
	log.Info("Disbanded team", "teamID", teamID)
	return nil
}

func (s *store) GetTeam(teamID string) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanTeam(s.db.QueryRow(`
		SELECT id, guild_id, name, tag, captain_id, created_at
		FROM teams WHERE id = ?
	`, teamID))
}

// GetTeamByName performs a case-insensitive exact-name lookup, falling back to
// a fuzzy match so "ravens" finds "River Ravens".
func (s *store) GetTeamByName(guildID, name string) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, err := s.scanTeam(s.db.QueryRow(`
		SELECT id, guild_id, name, tag, captain_id, created_at
		FROM teams WHERE guild_id = ? AND name = ? COLLATE NOCASE
	`, guildID, name))
	if err == nil {
		return team, nil
	}

	pattern := "%" + name + "%"
	team, err = s.scanTeam(s.db.QueryRow(`
		SELECT id, guild_id, name, tag, captain_id, created_at
		FROM teams WHERE guild_id = ? AND name LIKE ? COLLATE NOCASE
		LIMIT 1
	`, guildID, pattern))
	if err != nil {
		return nil, fmt.Errorf("team matching %q not found", name)
	}
	return team, nil
}

func (s *store) scanTeam(row *sql.Row) (*Team, error) {
	var t Team
	var tag, captain sql.NullString
	err := row.Scan(&t.ID, &t.GuildID, &t.Name, &tag, &captain, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Tag = tag.String
	t.CaptainID = captain.String
	return &t, nil
}

func (s *store) ListTeams(guildID string) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, guild_id, name, tag, captain_id, created_at
		FROM teams WHERE guild_id = ? ORDER BY name
	`, guildID)
	if err != nil {
		log.Error("Failed to query teams", "error", err, "guildID", guildID)
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		var tag, captain sql.NullString
		if err := rows.Scan(&t.ID, &t.GuildID, &t.Name, &tag, &captain, &t.CreatedAt); err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		t.Tag = tag.String
		t.CaptainID = captain.String
		teams = append(teams, t)
	}
	return teams, nil
}

func (s *store) AddToRoster(teamID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO team_members (team_id, player_id, added_at)
		VALUES (?, ?, strftime('%s','now'))
		ON CONFLICT(team_id, player_id) DO NOTHING
	`, teamID, playerID)
	if err != nil {
		log.Error("Failed to add player to roster", "error", err, "teamID", teamID, "playerID", playerID)
		return err
	}
	log.Info("Added player to roster", "teamID", teamID, "playerID", playerID)
	return nil
}

func (s *store) RemoveFromRoster(teamID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM team_members WHERE team_id = ? AND player_id = ?", teamID, playerID)
	if err != nil {
		log.Error("Failed to remove player from roster", "error", err, "teamID", teamID, "playerID", playerID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %s is not on that roster", playerID)
	}
	return nil
}

func (s *store) GetRoster(teamID string) ([]RosterEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id, p.guild_id, p.name, p.position, p.jersey_number, p.registered_at, tm.added_at
		FROM team_members tm
		JOIN players p ON p.id = tm.player_id
		WHERE tm.team_id = ?
		ORDER BY p.name
	`, teamID)
	if err != nil {
		log.Error("Failed to query roster", "error", err, "teamID", teamID)
		return nil, err
	}
	defer rows.Close()

	var roster []RosterEntry
	for rows.Next() {
		var e RosterEntry
		var position sql.NullString
		var jersey sql.NullInt64
		if err := rows.Scan(&e.ID, &e.GuildID, &e.Name, &position, &jersey, &e.RegisteredAt, &e.AddedAt); err != nil {
			log.Error("Failed to scan roster row", "error", err)
			continue
		}
		e.Position = position.String
		e.JerseyNumber = int(jersey.Int64)
		roster = append(roster, e)
	}
	return roster, nil
}

// RecordGameResult folds a finished game into player_stats for every player
// on both rosters, in one transaction.
func (s *store) RecordGameResult(outcome GameOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO player_stats (player_id, games_played, games_won, games_lost, games_drawn, goals_for, goals_against)
		VALUES (?, 1, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			games_played = games_played + 1,
			games_won = games_won + excluded.games_won,
			games_lost = games_lost + excluded.games_lost,
			games_drawn = games_drawn + excluded.games_drawn,
			goals_for = goals_for + excluded.goals_for,
			goals_against = goals_against + excluded.goals_against;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	record := func(teamID string, scored, conceded int) error {
		rows, err := tx.Query("SELECT player_id FROM team_members WHERE team_id = ?", teamID)
		if err != nil {
			return err
		}
		defer rows.Close()

		var won, lost, drawn int
		switch {
		case scored > conceded:
			won = 1
		case scored < conceded:
			lost = 1
		default:
			drawn = 1
		}
		for rows.Next() {
			var playerID string
			if err := rows.Scan(&playerID); err != nil {
				return err
			}
			if _, err := stmt.Exec(playerID, won, lost, drawn, scored, conceded); err != nil {
				return err
			}
		}
		return rows.Err()
	}

	if err := record(outcome.HomeTeamID, outcome.HomeScore, outcome.AwayScore); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record home team stats: %w", err)
	}
	if err := record(outcome.AwayTeamID, outcome.AwayScore, outcome.HomeScore); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record away team stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit game result", "error", err)
		return err
	}
	log.Info("Recorded game result", "home", outcome.HomeTeamID, "away", outcome.AwayTeamID,
		"score", fmt.Sprintf("%d-%d", outcome.HomeScore, outcome.AwayScore))
	return nil
}

func (s *store) GetLeaderboard(guildID string) ([]PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT
			ps.player_id,
			p.name,
			ps.games_played,
			ps.games_won,
			ps.games_lost,
			ps.games_drawn,
			ps.goals_for,
			ps.goals_against
		FROM player_stats ps
		JOIN players p ON ps.player_id = p.id
		WHERE p.guild_id = ?
		ORDER BY ps.games_won DESC, ps.goals_for DESC;
	`, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []PlayerStats
	for rows.Next() {
		var stat PlayerStats
		err := rows.Scan(
			&stat.PlayerID,
			&stat.PlayerName,
			&stat.GamesPlayed,
			&stat.GamesWon,
			&stat.GamesLost,
			&stat.GamesDrawn,
			&stat.GoalsFor,
			&stat.GoalsAgainst,
		)
		if err != nil {
			return nil, err
		}
		if stat.GamesPlayed > 0 {
			stat.WinPercentage = (float64(stat.GamesWon) / float64(stat.GamesPlayed)) * 100
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// GetPlayerStatsByName retrieves one player's record by name. The search is
// case-insensitive and fuzzy, so "sam" will match "Sam Whitaker".
func (s *store) GetPlayerStatsByName(guildID, playerName string) (*PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT
			p.id,
			p.name,
			COALESCE(ps.games_played, 0),
			COALESCE(ps.games_won, 0),
			COALESCE(ps.games_lost, 0),
			COALESCE(ps.games_drawn, 0),
			COALESCE(ps.goals_for, 0),
			COALESCE(ps.goals_against, 0)
		FROM players p
		LEFT JOIN player_stats ps ON p.id = ps.player_id
		WHERE p.guild_id = ? AND p.name LIKE ? COLLATE NOCASE
		LIMIT 1
	`

	var stat PlayerStats
	pattern := "%" + playerName + "%"

	row := s.db.QueryRow(query, guildID, pattern)
	err := row.Scan(
		&stat.PlayerID,
		&stat.PlayerName,
		&stat.GamesPlayed,
		&stat.GamesWon,
		&stat.GamesLost,
		&stat.GamesDrawn,
		&stat.GoalsFor,
		&stat.GoalsAgainst,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("No stats found for player matching pattern", "pattern", pattern)
			return nil, fmt.Errorf("player matching '%s' not found", playerName)
		}
		log.Error("Failed to query player stats by name", "error", err, "pattern", pattern)
		return nil, fmt.Errorf("database error: %w", err)
	}

	if stat.GamesPlayed > 0 {
		stat.WinPercentage = (float64(stat.GamesWon) / float64(stat.GamesPlayed)) * 100
	}
	return &stat, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"player_stats", "team_members", "teams", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "error", err, "table", table)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
