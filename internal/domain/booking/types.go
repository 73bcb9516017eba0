package booking

import "time"

type AvailabilityInput struct {
	Date    time.Time
	StaffID *uint
}

// Interval is a half-open busy period [Start, End) reported by the
// external calendar.
type Interval struct {
	Start time.Time
	End   time.Time
}
