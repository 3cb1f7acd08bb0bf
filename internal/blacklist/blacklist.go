package blacklist

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Entry is one blacklisted user in a guild.
type Entry struct {
	ID          int64
	GuildID     string
	SubjectID   string
	SubjectName string
	Reason      string
	AddedBy     string
	CreatedAt   int64
}

// Store defines the interface for the per-guild blacklist.
type Store interface {
	Add(e Entry) error
	Remove(guildID, subjectID string) error
	List(guildID string) ([]Entry, error)
	IsListed(guildID, subjectID string) bool
	Clear()
}

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new blacklist Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Add(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO blacklists (guild_id, subject_id, subject_name, reason, added_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(guild_id, subject_id) DO UPDATE SET
			subject_name = excluded.subject_name,
			reason = excluded.reason,
			added_by = excluded.added_by;
	`, e.GuildID, e.SubjectID, e.SubjectName, e.Reason, e.AddedBy, e.CreatedAt)
	if err != nil {
		log.Error("Failed to blacklist user", "error", err, "subjectID", e.SubjectID)
		return err
	}
	log.Info("Blacklisted user", "guildID", e.GuildID, "subjectID", e.SubjectID, "addedBy", e.AddedBy)
	return nil
}

func (s *store) Remove(guildID, subjectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"DELETE FROM blacklists WHERE guild_id = ? AND subject_id = ?",
		guildID, subjectID,
	)
	if err != nil {
		log.Error("Failed to remove blacklist entry", "error", err, "subjectID", subjectID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %s is not blacklisted", subjectID)
	}
	log.Info("Removed blacklist entry", "guildID", guildID, "subjectID", subjectID)
	return nil
}

func (s *store) List(guildID string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, guild_id, subject_id, subject_name, reason, added_by, created_at
		FROM blacklists WHERE guild_id = ? ORDER BY created_at DESC
	`, guildID)
	if err != nil {
		log.Error("Failed to query blacklist", "error", err, "guildID", guildID)
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var reason sql.NullString
		if err := rows.Scan(&e.ID, &e.GuildID, &e.SubjectID, &e.SubjectName, &reason, &e.AddedBy, &e.CreatedAt); err != nil {
			log.Error("Failed to scan blacklist row", "error", err)
			continue
		}
		e.Reason = reason.String
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *store) IsListed(guildID, subjectID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM blacklists WHERE guild_id = ? AND subject_id = ?)",
		guildID, subjectID,
	).Scan(&exists)
	if err != nil {
		log.Error("Failed to check blacklist", "error", err, "subjectID", subjectID)
		return false
	}
	return exists
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM blacklists"); err != nil {
		log.Error("Failed to clear blacklist", "error", err)
	}
}
