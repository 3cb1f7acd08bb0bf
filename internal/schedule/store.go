package schedule

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new schedule Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const gameColumns = `id, guild_id, home_team_id, away_team_id, start_time, created_by, created_at,
	channel_id, message_id, referee_id, referee_name, home_score, away_score, processing_status, reminded_at`

func (s *store) CreateGame(g Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.Status == "" {
		g.Status = StatusScheduled
	}
	_, err := s.db.Exec(`
		INSERT INTO scheduled_games (id, guild_id, home_team_id, away_team_id, start_time, created_by, created_at, processing_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.GuildID, g.HomeTeamID, g.AwayTeamID, g.StartTime, g.CreatedBy, g.CreatedAt, g.Status)
	if err != nil {
		log.Error("Failed to create game", "error", err, "gameID", g.ID)
		return err
	}
	log.Info("Created game", "gameID", g.ID, "home", g.HomeTeamID, "away", g.AwayTeamID, "start", g.StartTime)
	return nil
}

func (s *store) GetGame(gameID string) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, err := s.scanGame(s.db.QueryRow(
		"SELECT "+gameColumns+" FROM scheduled_games WHERE id = ?", gameID,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("game %s not found", gameID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return game, nil
}

// ListUpcoming returns games starting at or after `from`, soonest first.
// Canceled games are excluded.
func (s *store) ListUpcoming(guildID string, from int64, limit int) ([]*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT `+gameColumns+` FROM scheduled_games
		WHERE guild_id = ? AND start_time >= ? AND processing_status != ?
		ORDER BY start_time ASC
		LIMIT ?
	`, guildID, from, StatusCanceled, limit)
	if err != nil {
		log.Error("Failed to query upcoming games", "error", err, "guildID", guildID)
		return nil, err
	}
	defer rows.Close()
	return s.collectGames(rows)
}

// FindAround returns games whose start time falls within `window` seconds of
// `target`, closest first. Used to locate a game from a spoken time like
// "last friday 7pm".
func (s *store) FindAround(guildID string, target, window int64) ([]*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT `+gameColumns+` FROM scheduled_games
		WHERE guild_id = ? AND start_time BETWEEN ? AND ? AND processing_status != ?
		ORDER BY ABS(start_time - ?) ASC
	`, guildID, target-window, target+window, StatusCanceled, target)
	if err != nil {
		log.Error("Failed to search games", "error", err, "guildID", guildID, "target", target)
		return nil, err
	}
	defer rows.Close()
	return s.collectGames(rows)
}

// Reschedule moves a game to a new start time and resets its lifecycle so it
// gets announced again.
func (s *store) Reschedule(gameID string, newStart int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE scheduled_games
		SET start_time = ?, processing_status = ?, reminded_at = NULL
		WHERE id = ? AND processing_status NOT IN (?, ?)
	`, newStart, StatusScheduled, gameID, StatusCanceled, StatusCompleted)
	if err != nil {
		log.Error("Failed to reschedule game", "error", err, "gameID", gameID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("game %s cannot be rescheduled", gameID)
	}
	log.Info("Rescheduled game", "gameID", gameID, "newStart", newStart)
	return nil
}

func (s *store) Cancel(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE scheduled_games SET processing_status = ?
		WHERE id = ? AND processing_status NOT IN (?, ?)
	`, StatusCanceled, gameID, StatusCanceled, StatusCompleted)
	if err != nil {
		log.Error("Failed to cancel game", "error", err, "gameID", gameID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("game %s cannot be canceled", gameID)
	}
	log.Info("Canceled game", "gameID", gameID)
	return nil
}

// ReportResult records the final score and moves the game to
// RESULT_AVAILABLE so the processor picks it up.
func (s *store) ReportResult(gameID string, homeScore, awayScore int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE scheduled_games
		SET home_score = ?, away_score = ?, processing_status = ?
		WHERE id = ? AND processing_status NOT IN (?, ?)
	`, homeScore, awayScore, StatusResultAvailable, gameID, StatusCanceled, StatusCompleted)
	if err != nil {
		log.Error("Failed to report result", "error", err, "gameID", gameID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("game %s cannot accept a result", gameID)
	}
	log.Info("Reported result", "gameID", gameID, "score", fmt.Sprintf("%d-%d", homeScore, awayScore))
	return nil
}

// ClaimRefereeSlot assigns the referee only if the slot is still empty. The
// guarded UPDATE makes concurrent button presses safe: exactly one wins.
func (s *store) ClaimRefereeSlot(gameID, refereeID, refereeName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE scheduled_games
		SET referee_id = ?, referee_name = ?
		WHERE id = ? AND referee_id IS NULL AND processing_status NOT IN (?, ?)
	`, refereeID, refereeName, gameID, StatusCanceled, StatusCompleted)
	if err != nil {
		log.Error("Failed to claim referee slot", "error", err, "gameID", gameID, "refereeID", refereeID)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		log.Debug("Referee slot already taken", "gameID", gameID, "refereeID", refereeID)
		return false, nil
	}
	log.Info("Referee slot claimed", "gameID", gameID, "refereeID", refereeID, "refereeName", refereeName)
	return true, nil
}

// ReleaseRefereeSlot frees the slot, but only for the referee who holds it.
func (s *store) ReleaseRefereeSlot(gameID, refereeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE scheduled_games
		SET referee_id = NULL, referee_name = NULL
		WHERE id = ? AND referee_id = ?
	`, gameID, refereeID)
	if err != nil {
		log.Error("Failed to release referee slot", "error", err, "gameID", gameID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("referee slot for game %s is not held by that user", gameID)
	}
	return nil
}

// SetAnnouncement stores the handle of the announcement message so reminders
// and result posts can thread off it.
func (s *store) SetAnnouncement(gameID, channelID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"UPDATE scheduled_games SET channel_id = ?, message_id = ? WHERE id = ?",
		channelID, messageID, gameID,
	)
	if err != nil {
		log.Error("Failed to store announcement handle", "error", err, "gameID", gameID)
	}
	return err
}

// UpdateStatus transitions a game to a new lifecycle state.
func (s *store) UpdateStatus(gameID string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE scheduled_games SET processing_status = ? WHERE id = ?", status, gameID)
	return err
}

func (s *store) MarkReminded(gameID string, at int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"UPDATE scheduled_games SET processing_status = ?, reminded_at = ? WHERE id = ?",
		StatusReminded, at, gameID,
	)
	return err
}

// GetGamesForProcessing retrieves all games that are not yet in a terminal state.
func (s *store) GetGamesForProcessing() ([]*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT `+gameColumns+` FROM scheduled_games
		WHERE processing_status NOT IN (?, ?)
		ORDER BY start_time ASC
	`, StatusCompleted, StatusCanceled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.collectGames(rows)
}

func (s *store) collectGames(rows *sql.Rows) ([]*Game, error) {
	var games []*Game
	for rows.Next() {
		game, err := s.scanGame(rows)
		if err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

// scanGame is a helper to scan a single game row.
func (s *store) scanGame(scanner interface{ Scan(...any) error }) (*Game, error) {
	var g Game
	var channelID, messageID, refereeID, refereeName sql.NullString
	var homeScore, awayScore, remindedAt sql.NullInt64

	err := scanner.Scan(
		&g.ID, &g.GuildID, &g.HomeTeamID, &g.AwayTeamID, &g.StartTime, &g.CreatedBy, &g.CreatedAt,
		&channelID, &messageID, &refereeID, &refereeName, &homeScore, &awayScore, &g.Status, &remindedAt,
	)
	if err != nil {
		return nil, err
	}

	g.ChannelID = channelID.String
	g.MessageID = messageID.String
	g.RefereeID = refereeID.String
	g.RefereeName = refereeName.String
	if homeScore.Valid && awayScore.Valid {
		g.HomeScore = int(homeScore.Int64)
		g.AwayScore = int(awayScore.Int64)
		g.HasResult = true
	}
	g.RemindedAt = remindedAt.Int64
	return &g, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM scheduled_games"); err != nil {
		log.Error("Failed to clear scheduled games", "error", err)
	}
}
