package daynight

import (
	"log/slog"
	"sync"
	"time"
)

// Night spans local hours [20,24) and [0,6). A fixed clock heuristic, not a
// sunrise/sunset calculation.
const (
	nightStartHour = 20
	nightEndHour   = 6
)

// Classifier decides whether it is locally night at a location. It remembers
// its last answer so callers stay usable while the location's timezone is
// still resolving: an absent or unloadable timezone returns the last known
// classification (initially day) instead of failing.
type Classifier struct {
	mu     sync.Mutex
	last   bool
	logger *slog.Logger
}

func NewClassifier(logger *slog.Logger) *Classifier {
	return &Classifier{
		logger: logger.With("component", "daynight-classifier"),
	}
}

// Classify reports whether now falls in the night window of the given IANA
// timezone.
func (c *Classifier) Classify(timezoneID string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timezoneID == "" {
		return c.last
	}

	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		c.logger.Warn("unknown timezone, keeping last day/night classification",
			"timezone", timezoneID,
			"error", err,
		)
		return c.last
	}

	hour := now.In(loc).Hour()
	c.last = hour >= nightStartHour || hour < nightEndHour
	return c.last
}
