package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/ohhell/internal/common/clock Clock

// Clock reports the current time so services can be tested with fixed timestamps
type Clock interface {
	Now() time.Time
}

// System implements Clock using the wall clock in UTC
type System struct{}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}
