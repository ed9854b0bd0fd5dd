package transaction

import "time"

// SetNow replaces the clock used for default transaction dates.
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}
