package server

import (
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxClients triggers pruning of idle clients.
const maxClients = 10_000

// limiter enforces a per-minute token bucket and a per-UTC-day quota for
// each client key.
type limiter struct {
	perMinute int
	perDay    int
	now       func() time.Time

	mu      sync.Mutex
	clients map[string]*clientQuota
}

type clientQuota struct {
	minute *rate.Limiter
	day    string
	count  int
	seen   time.Time
}

// rejection describes a refused request.
type rejection struct {
	RetryAfter time.Duration
	Message    string
}

func newLimiter(perMinute, perDay int, now func() time.Time) *limiter {
	if now == nil {
		now = time.Now
	}
	return &limiter{
		perMinute: perMinute,
		perDay:    perDay,
		now:       now,
		clients:   make(map[string]*clientQuota),
	}
}

// allow records a request for key, or explains why it is refused.
func (l *limiter) allow(key string) *rejection {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.clients) >= maxClients {
		l.prune(now)
	}
	c, ok := l.clients[key]
	if !ok {
		c = &clientQuota{}
		if l.perMinute > 0 {
			c.minute = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute)
		}
		l.clients[key] = c
	}
	c.seen = now

	var res *rate.Reservation
	if c.minute != nil {
		res = c.minute.ReserveN(now, 1)
		if delay := res.DelayFrom(now); delay > 0 {
			res.CancelAt(now)
			secs := retrySeconds(delay)
			return &rejection{
				RetryAfter: time.Duration(secs) * time.Second,
				Message:    fmt.Sprintf("Przekroczono limit %d/min dla tego adresu. Spróbuj ponownie za %d s.", l.perMinute, secs),
			}
		}
	}

	if l.perDay > 0 {
		day := now.UTC().Format(time.DateOnly)
		if c.day != day {
			c.day, c.count = day, 0
		}
		if c.count >= l.perDay {
			if res != nil {
				res.CancelAt(now)
			}
			return &rejection{
				RetryAfter: time.Hour,
				Message:    fmt.Sprintf("Przekroczono dzienny limit %d zapytań dla tego adresu. Spróbuj jutro.", l.perDay),
			}
		}
		c.count++
	}
	return nil
}

// prune drops clients idle for a day.
func (l *limiter) prune(now time.Time) {
	for k, c := range l.clients {
		if now.Sub(c.seen) > 24*time.Hour {
			delete(l.clients, k)
		}
	}
}

func retrySeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
