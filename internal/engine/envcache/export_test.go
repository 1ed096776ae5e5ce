package envcache

import "time"

// SetClock replaces the clock used to stamp manifests.
// This is exported for testing purposes only.
func (b *Builder) SetClock(now func() time.Time) {
	b.now = now
}
