package domain

import "time"

// now is swapped in tests to freeze or rewind the clock. Timestamps carry
// microsecond precision, matching what PostgreSQL stores.
var now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

// stampTimes fills zero timestamps. A missing updatedAt takes createdAt so a
// freshly created entity has createdAt == updatedAt.
func stampTimes(createdAt, updatedAt time.Time) (time.Time, time.Time) {
	if createdAt.IsZero() {
		createdAt = now()
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return createdAt.UTC(), updatedAt.UTC()
}

// nextUpdatedAt returns a timestamp strictly after prev. A stalled clock
// advances by one microsecond.
func nextUpdatedAt(prev time.Time) time.Time {
	t := now()
	if !t.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return t
}
