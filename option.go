package arcreplacer

import (
	"time"

	"github.com/sirupsen/logrus"
)

type (
	// Option configures a [Replacer] during [New].
	Option func(*Replacer)

	// Clock supplies the timestamps kept for each accessed entry.
	Clock interface {
		Now() time.Time
	}

	wallClock struct{}
)

//go:generate mockgen -destination=mock_clock_test.go -package=arcreplacer_test . Clock

func (wallClock) Now() time.Time { return time.Now() }

// WithClock sets the source of last-access timestamps.
// The default is the wall clock.
func WithClock(clock Clock) Option {
	return func(r *Replacer) { r.clock = clock }
}

// WithLogger enables debug logging of evictions,
// target adaptations and removals.
func WithLogger(log *logrus.Logger) Option {
	return func(r *Replacer) { r.log = log }
}
