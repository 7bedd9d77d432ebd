package ratelimit

import (
	"sync"
	"time"
)

const (
	minuteWindow = time.Minute
	hourWindow   = time.Hour
)

// Decision is the outcome of a rate limit check. Remaining counts are
// populated on every call, allowed or not, so callers can always emit quota
// headers. RetryAfter is zero when the request is allowed.
type Decision struct {
	Allowed         bool
	RetryAfter      time.Duration
	LimitMinute     int
	RemainingMinute int
	LimitHour       int
	RemainingHour   int
}

// bucket tracks the request timestamps of one client within the last hour.
type bucket struct {
	mu       sync.Mutex
	requests []time.Time
}

// Limiter enforces per-client request budgets over two sliding windows, one
// minute and one hour. Buckets are created on first use and kept for the
// lifetime of the process; state is in-memory only, suitable for a
// single-instance deployment.
type Limiter struct {
	perMinute int
	perHour   int

	mu      sync.RWMutex
	buckets map[string]*bucket
}

// NewLimiter builds a limiter with the given per-minute and per-hour budgets.
func NewLimiter(perMinute, perHour int) *Limiter {
	return &Limiter{
		perMinute: perMinute,
		perHour:   perHour,
		buckets:   make(map[string]*bucket),
	}
}

func (l *Limiter) bucketFor(clientID string) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[clientID]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok = l.buckets[clientID]; ok {
		return b
	}
	b = &bucket{}
	l.buckets[clientID] = b
	return b
}

// Allow decides whether clientID may proceed at now.
//
// The prune, count, decide and record steps all run under the bucket's own
// lock, so concurrent requests from the same client cannot interleave, while
// distinct clients never contend. The timestamp is recorded only when the
// request is allowed. The minute window is checked before the hour window:
// burst pressure surfaces with the shorter Retry-After.
func (l *Limiter) Allow(clientID string, now time.Time) Decision {
	b := l.bucketFor(clientID)
	b.mu.Lock()
	defer b.mu.Unlock()

	// Prune everything older than one hour before counting. This bounds each
	// bucket to at most one hour of history.
	hourAgo := now.Add(-hourWindow)
	kept := b.requests[:0]
	for _, t := range b.requests {
		if t.After(hourAgo) {
			kept = append(kept, t)
		}
	}
	b.requests = kept

	minuteAgo := now.Add(-minuteWindow)
	minuteCount := 0
	for _, t := range b.requests {
		if t.After(minuteAgo) {
			minuteCount++
		}
	}
	hourCount := len(b.requests)

	d := Decision{
		LimitMinute:     l.perMinute,
		RemainingMinute: max(0, l.perMinute-minuteCount),
		LimitHour:       l.perHour,
		RemainingHour:   max(0, l.perHour-hourCount),
	}

	if minuteCount >= l.perMinute {
		d.RetryAfter = minuteWindow
		return d
	}
	if hourCount >= l.perHour {
		d.RetryAfter = hourWindow
		return d
	}

	d.Allowed = true
	b.requests = append(b.requests, now)
	return d
}
