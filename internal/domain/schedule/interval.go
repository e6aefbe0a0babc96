package schedule

import (
	"time"

	"github.com/chairman-shop/chairman/internal/models"
)

// ===============================
// Interval math
// ===============================

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share at least one
// instant: [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2. Touching
// endpoints do not overlap, which is what permits back-to-back booking.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Blocked returns the interval an appointment occupies on the schedule:
// service time plus the trailing buffer. Buffer applies strictly after
// an appointment, never before it.
func Blocked(ap *models.Appointment) Interval {
	return Interval{Start: ap.StartTime, End: ap.BlockedUntil()}
}

// IsTimeAvailable checks a candidate slot against the day's existing
// appointments. The candidate blocks [start, start+duration+buffer);
// each existing appointment blocks [start, end+buffer). excludeID
// skips one appointment, used when rescheduling it against itself
// (zero excludes nothing).
func IsTimeAvailable(
	existing []models.Appointment,
	start time.Time,
	duration time.Duration,
	buffer time.Duration,
	excludeID uint,
) bool {

	candidate := Interval{
		Start: start,
		End:   start.Add(duration + buffer),
	}

	for i := range existing {
		ap := &existing[i]
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if candidate.Overlaps(Blocked(ap)) {
			return false
		}
	}

	return true
}

// DayWindow returns the [midnight, midnight+24h) range containing t,
// in t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
