package scaffold

import "time"

// SetClock replaces the staging id source and the clock.
func (b *Builder) SetClock(newID func() string, now func() time.Time) {
	b.newID = newID
	b.now = now
}
