package dashboard

import (
	"bytes"
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Kind identifies which pinned dashboard a row belongs to.
type Kind string

const (
	KindLeaderboard Kind = "LEADERBOARD"
	KindSchedule    Kind = "SCHEDULE"
)

// Dashboard is a pinned, periodically refreshed message. The snapshot holds
// the msgpack encoding of whatever was last rendered so refreshes can skip
// unchanged content.
type Dashboard struct {
	GuildID   string
	Kind      Kind
	ChannelID string
	MessageID string
	Snapshot  []byte
	UpdatedAt int64
}

// Store defines the interface for persisting dashboard state.
type Store interface {
	Get(guildID string, kind Kind) (*Dashboard, error)
	Save(d Dashboard) error
	Delete(guildID string, kind Kind) error
	Clear()
}

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new dashboard Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// Snapshot encodes a rendered state for storage and comparison.
func Snapshot(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unchanged reports whether the stored snapshot already matches.
func (d *Dashboard) Unchanged(snapshot []byte) bool {
	return d != nil && bytes.Equal(d.Snapshot, snapshot)
}

// Get returns the dashboard row, or nil when none has been created yet.
func (s *store) Get(guildID string, kind Kind) (*Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var d Dashboard
	err := s.db.QueryRow(`
		SELECT guild_id, kind, channel_id, message_id, snapshot, updated_at
		FROM dashboards WHERE guild_id = ? AND kind = ?
	`, guildID, kind).Scan(&d.GuildID, &d.Kind, &d.ChannelID, &d.MessageID, &d.Snapshot, &d.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &d, nil
}

func (s *store) Save(d Dashboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO dashboards (guild_id, kind, channel_id, message_id, snapshot, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(guild_id, kind) DO UPDATE SET
			channel_id = excluded.channel_id,
			message_id = excluded.message_id,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at;
	`, d.GuildID, d.Kind, d.ChannelID, d.MessageID, d.Snapshot, d.UpdatedAt)
	if err != nil {
		log.Error("Failed to save dashboard", "error", err, "guildID", d.GuildID, "kind", d.Kind)
		return err
	}
	log.Debug("Saved dashboard", "guildID", d.GuildID, "kind", d.Kind)
	return nil
}

func (s *store) Delete(guildID string, kind Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM dashboards WHERE guild_id = ? AND kind = ?", guildID, kind)
	if err != nil {
		log.Error("Failed to delete dashboard", "error", err, "guildID", guildID, "kind", kind)
	}
	return err
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM dashboards"); err != nil {
		log.Error("Failed to clear dashboards", "error", err)
	}
}
