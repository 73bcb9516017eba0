package timezone

import (
	"os"
	"time"
)

// The studio operates in a single timezone; slot times and the same-day
// lead-time check are interpreted in it.

const DefaultTimezone = "Europe/Berlin"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// StudioLocation resolves the configured studio timezone, falling back
// to the default when STUDIO_TIMEZONE is unset or invalid.
func StudioLocation() *time.Location {
	return Location(os.Getenv("STUDIO_TIMEZONE"))
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(StudioLocation())
}
