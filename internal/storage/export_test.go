package storage

import "time"

// SetClock overrides the creation-time source used by Create.
func SetClock(s *Store, now func() time.Time) {
	s.now = now
}
