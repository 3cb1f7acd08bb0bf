package tickets

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Kind distinguishes what a ticket is about.
type Kind string

const (
	KindSupport      Kind = "SUPPORT"
	KindRegistration Kind = "REGISTRATION"
	KindReport       Kind = "REPORT"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

// Ticket is a user-opened request tracked by the moderators.
type Ticket struct {
	ID        string
	GuildID   string
	UserID    string
	Kind      Kind
	Subject   string
	Body      string
	Status    string
	ChannelID string
	MessageID string
	CreatedAt int64
	ClosedAt  int64
	ClosedBy  string
}

// Store defines the interface for the ticket queue.
type Store interface {
	Open(tk Ticket) error
	Get(ticketID string) (*Ticket, error)
	Close(ticketID, closedBy string, at int64) error
	ListOpen(guildID string) ([]Ticket, error)
	OpenTicketFor(guildID, userID string, kind Kind) (*Ticket, error)
	SetMessage(ticketID, channelID, messageID string) error
	Clear()
}

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new ticket Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Open(tk Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO tickets (id, guild_id, user_id, kind, subject, body, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, tk.ID, tk.GuildID, tk.UserID, tk.Kind, tk.Subject, tk.Body, StatusOpen, tk.CreatedAt)
	if err != nil {
		log.Error("Failed to open ticket", "error", err, "ticketID", tk.ID)
		return err
	}
	log.Info("Opened ticket", "ticketID", tk.ID, "kind", tk.Kind, "userID", tk.UserID)
	return nil
}

func (s *store) Get(ticketID string) (*Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tk, err := s.scanTicket(s.db.QueryRow(`
		SELECT id, guild_id, user_id, kind, subject, body, status, channel_id, message_id, created_at, closed_at, closed_by
		FROM tickets WHERE id = ?
	`, ticketID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ticket %s not found", ticketID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return tk, nil
}

func (s *store) Close(ticketID, closedBy string, at int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE tickets SET status = ?, closed_at = ?, closed_by = ?
		WHERE id = ? AND status = ?
	`, StatusClosed, at, closedBy, ticketID, StatusOpen)
	if err != nil {
		log.Error("Failed to close ticket", "error", err, "ticketID", ticketID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("ticket %s is not open", ticketID)
	}
	log.Info("Closed ticket", "ticketID", ticketID, "closedBy", closedBy)
	return nil
}

func (s *store) ListOpen(guildID string) ([]Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, guild_id, user_id, kind, subject, body, status, channel_id, message_id, created_at, closed_at, closed_by
		FROM tickets WHERE guild_id = ? AND status = ? ORDER BY created_at ASC
	`, guildID, StatusOpen)
	if err != nil {
		log.Error("Failed to query open tickets", "error", err, "guildID", guildID)
		return nil, err
	}
	defer rows.Close()

	var tickets []Ticket
	for rows.Next() {
		tk, err := s.scanTicket(rows)
		if err != nil {
			log.Error("Failed to scan ticket row", "error", err)
			continue
		}
		tickets = append(tickets, *tk)
	}
	return tickets, nil
}

// OpenTicketFor returns the user's open ticket of the given kind, if any.
// Used to stop a user from stacking duplicate requests.
func (s *store) OpenTicketFor(guildID, userID string, kind Kind) (*Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tk, err := s.scanTicket(s.db.QueryRow(`
		SELECT id, guild_id, user_id, kind, subject, body, status, channel_id, message_id, created_at, closed_at, closed_by
		FROM tickets WHERE guild_id = ? AND user_id = ? AND kind = ? AND status = ?
		LIMIT 1
	`, guildID, userID, kind, StatusOpen))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return tk, nil
}

func (s *store) SetMessage(ticketID, channelID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"UPDATE tickets SET channel_id = ?, message_id = ? WHERE id = ?",
		channelID, messageID, ticketID,
	)
	if err != nil {
		log.Error("Failed to store ticket message handle", "error", err, "ticketID", ticketID)
	}
	return err
}

func (s *store) scanTicket(scanner interface{ Scan(...any) error }) (*Ticket, error) {
	var tk Ticket
	var body, channelID, messageID, closedBy sql.NullString
	var closedAt sql.NullInt64

	err := scanner.Scan(
		&tk.ID, &tk.GuildID, &tk.UserID, &tk.Kind, &tk.Subject, &body, &tk.Status,
		&channelID, &messageID, &tk.CreatedAt, &closedAt, &closedBy,
	)
	if err != nil {
		return nil, err
	}
	tk.Body = body.String
	tk.ChannelID = channelID.String
	tk.MessageID = messageID.String
	tk.ClosedAt = closedAt.Int64
	tk.ClosedBy = closedBy.String
	return &tk, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM tickets"); err != nil {
		log.Error("Failed to clear tickets", "error", err)
	}
}
