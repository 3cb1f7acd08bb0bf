package settings

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Well-known setting keys.
const (
	KeyAnnounceChannel = "announce_channel"
	KeyTicketChannel   = "ticket_channel"
	KeyRecruitChannel  = "recruit_channel"
	KeyModRole         = "mod_role"
	KeyRefereeRole     = "referee_role"
	KeyTimezone        = "timezone"
	KeyReminderLead    = "reminder_lead_minutes"
)

// Store defines the interface for per-guild configuration.
type Store interface {
	Get(guildID, key string) (string, error)
	GetOr(guildID, key, fallback string) string
	Set(guildID, key, value string) error
	Delete(guildID, key string) error
	All(guildID string) (map[string]string, error)
	Clear()
}

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new settings Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Get(guildID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE guild_id = ? AND key = ?",
		guildID, key,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("setting %s not set", key)
		}
		return "", fmt.Errorf("database error: %w", err)
	}
	return value, nil
}

// GetOr returns the stored value or the fallback when the key is unset.
func (s *store) GetOr(guildID, key, fallback string) string {
	value, err := s.Get(guildID, key)
	if err != nil {
		return fallback
	}
	return value
}

func (s *store) Set(guildID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO settings (guild_id, key, value)
		VALUES (?, ?, ?)
		ON CONFLICT(guild_id, key) DO UPDATE SET value = excluded.value;
	`, guildID, key, value)
	if err != nil {
		log.Error("Failed to set setting", "error", err, "guildID", guildID, "key", key)
		return err
	}
	log.Debug("Setting updated", "guildID", guildID, "key", key)
	return nil
}

func (s *store) Delete(guildID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM settings WHERE guild_id = ? AND key = ?", guildID, key)
	if err != nil {
		log.Error("Failed to delete setting", "error", err, "guildID", guildID, "key", key)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("setting %s not set", key)
	}
	return nil
}

func (s *store) All(guildID string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT key, value FROM settings WHERE guild_id = ? ORDER BY key", guildID)
	if err != nil {
		log.Error("Failed to query settings", "error", err, "guildID", guildID)
		return nil, err
	}
	defer rows.Close()

	all := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			log.Error("Failed to scan setting row", "error", err)
			continue
		}
		all[key] = value
	}
	return all, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM settings"); err != nil {
		log.Error("Failed to clear settings", "error", err)
	}
}
