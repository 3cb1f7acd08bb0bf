package bot

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles command usage per user so one member can't flood the bot.
type Limiter struct {
	mu       sync.Mutex
	users    map[string]*userLimiter
	rate     rate.Limit
	burst    int
	lifetime time.Duration
}

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter allows `burst` commands immediately and refills one every `every`.
func NewLimiter(every time.Duration, burst int) *Limiter {
	return &Limiter{
		users:    make(map[string]*userLimiter),
		rate:     rate.Every(every),
		burst:    burst,
		lifetime: 10 * time.Minute,
	}
}

// Allow reports whether the user may run a command right now.
func (l *Limiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[userID]
	if !ok {
		u = &userLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.users[userID] = u
	}
	u.lastSeen = time.Now()
	return u.limiter.Allow()
}

// Sweep drops limiters for users who have gone quiet.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.lifetime)
	for id, u := range l.users {
		if u.lastSeen.Before(cutoff) {
			delete(l.users, id)
		}
	}
}
