package booking

import (
	"errors"
	"time"
)

var ErrInvalidRentalPeriod = errors.New("invalid rental period")

// Period is the half-open-in-nothing rental window [start, end]. start < end
// always holds for a constructed Period.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates the window against now: a start in the past, an
// equal-instant window and an inverted window are all the same validation
// failure. Whether end has already passed is deliberately not checked
// (end < now implies start < now).
func NewPeriod(now, start, end time.Time) (Period, error) {
	if start.Before(now) || start.Equal(end) || start.After(end) {
		return Period{}, ErrInvalidRentalPeriod
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rebuilds a persisted window without re-validating against
// the present; stored bookings legitimately lie in the past.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Includes reports start <= now <= end (the CURRENT classification).
func (p Period) Includes(now time.Time) bool {
	return !p.start.After(now) && !p.end.Before(now)
}

// EndedBefore reports end < now (the PAST classification).
func (p Period) EndedBefore(now time.Time) bool {
	return p.end.Before(now)
}

// StartsAfter reports start > now (the FUTURE classification).
func (p Period) StartsAfter(now time.Time) bool {
	return p.start.After(now)
}
