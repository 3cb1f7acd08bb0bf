package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllowsBurstThenBlocks(t *testing.T) {
	l := NewLimiter(time.Hour, 3)

	assert.True(t, l.Allow("U1"))
	assert.True(t, l.Allow("U1"))
	assert.True(t, l.Allow("U1"))
	assert.False(t, l.Allow("U1"))

	// Other users have their own budget.
	assert.True(t, l.Allow("U2"))
}

func TestLimiterRefills(t *testing.T) {
	l := NewLimiter(10*time.Millisecond, 1)

	assert.True(t, l.Allow("U1"))
	assert.False(t, l.Allow("U1"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, l.Allow("U1"))
}

func TestLimiterSweep(t *testing.T) {
	l := NewLimiter(time.Hour, 1)
	l.lifetime = 0

	assert.True(t, l.Allow("U1"))
	assert.False(t, l.Allow("U1"))

	// Sweeping forgets the user, so their budget resets.
	l.Sweep()
	assert.True(t, l.Allow("U1"))
}
