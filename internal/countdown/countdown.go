package countdown

import (
	"fmt"
	"time"
)

// DefaultWarning is the threshold below which the countdown turns to warning
const DefaultWarning = 2 * time.Hour

// View is what the countdown region shows
type View struct {
	Remaining time.Duration
	Text      string
	Warning   bool
}

// Remaining returns the whole seconds left until the next local midnight.
// At exactly midnight the next midnight is a full day away, so the result
// ranges over [0, 23:59:59].
func Remaining(now time.Time) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	left := (next.Sub(now) - time.Nanosecond).Truncate(time.Second)
	if left < 0 {
		return 0
	}
	return left
}

// Format renders a duration as zero-padded HH:MM:SS
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Compute builds the countdown view for now
func Compute(now time.Time, warning time.Duration) View {
	left := Remaining(now)
	return View{
		Remaining: left,
		Text:      Format(left),
		Warning:   left < warning,
	}
}
