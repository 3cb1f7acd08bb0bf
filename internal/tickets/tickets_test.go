package tickets_test

import (
	"testing"

	"pitchside/internal/database"
	"pitchside/internal/tickets"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) tickets.Store {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(teardown)
	return tickets.New(db)
}

var ticketClock int64 = 1700000000

func openTicket(t *testing.T, s tickets.Store, userID string, kind tickets.Kind) string {
	t.Helper()
	id := uuid.NewString()
	ticketClock++
	err := s.Open(tickets.Ticket{
		ID:        id,
		GuildID:   "G1",
		UserID:    userID,
		Kind:      kind,
		Subject:   "need help",
		Body:      "details here",
		CreatedAt: ticketClock,
	})
	require.NoError(t, err)
	return id
}

func TestOpenAndGet(t *testing.T) {
	s := setupTestDB(t)
	id := openTicket(t, s, "U1", tickets.KindSupport)

	tk, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "U1", tk.UserID)
	assert.Equal(t, tickets.KindSupport, tk.Kind)
	assert.Equal(t, tickets.StatusOpen, tk.Status)
	assert.Equal(t, "need help", tk.Subject)

	_, err = s.Get("missing")
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	s := setupTestDB(t)
	id := openTicket(t, s, "U1", tickets.KindSupport)

	require.NoError(t, s.Close(id, "MOD1", 1700001000))

	tk, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, tickets.StatusClosed, tk.Status)
	assert.Equal(t, "MOD1", tk.ClosedBy)
	assert.Equal(t, int64(1700001000), tk.ClosedAt)

	// Closing twice reports an error.
	assert.Error(t, s.Close(id, "MOD1", 1700002000))
}

func TestListOpen(t *testing.T) {
	s := setupTestDB(t)
	first := openTicket(t, s, "U1", tickets.KindSupport)
	second := openTicket(t, s, "U2", tickets.KindReport)
	closed := openTicket(t, s, "U3", tickets.KindSupport)
	require.NoError(t, s.Close(closed, "MOD1", 1700001000))

	open, err := s.ListOpen("G1")
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, first, open[0].ID)
	assert.Equal(t, second, open[1].ID)
}

func TestOpenTicketFor(t *testing.T) {
	s := setupTestDB(t)
	id := openTicket(t, s, "U1", tickets.KindRegistration)

	tk, err := s.OpenTicketFor("G1", "U1", tickets.KindRegistration)
	require.NoError(t, err)
	require.NotNil(t, tk)
	assert.Equal(t, id, tk.ID)

	// A different kind doesn't count as a duplicate.
	tk, err = s.OpenTicketFor("G1", "U1", tickets.KindSupport)
	require.NoError(t, err)
	assert.Nil(t, tk)

	require.NoError(t, s.Close(id, "MOD1", 1700001000))
	tk, err = s.OpenTicketFor("G1", "U1", tickets.KindRegistration)
	require.NoError(t, err)
	assert.Nil(t, tk)
}

func TestSetMessage(t *testing.T) {
	s := setupTestDB(t)
	id := openTicket(t, s, "U1", tickets.KindSupport)

	require.NoError(t, s.SetMessage(id, "C1", "M1"))

	tk, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "C1", tk.ChannelID)
	assert.Equal(t, "M1", tk.MessageID)
}
