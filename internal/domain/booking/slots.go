package booking

import (
	"fmt"
	"time"
)

// ===============================
// Slot Catalog
// ===============================

// The studio offers a fixed grid of bookable start times, every day:
// 10:00 through 18:30 in 30-minute steps.

const (
	catalogOpenHour  = 10
	catalogCloseHour = 19 // exclusive

	// minimum interval between "now" and a same-day slot's start
	LeadTime = 60 * time.Minute

	SlotLayout = "15:04"
	DateLayout = "2006-01-02"
)

var catalog = buildCatalog()

func buildCatalog() []string {
	var slots []string
	for h := catalogOpenHour; h < catalogCloseHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return slots
}

// Catalog returns the ordered slot list. Callers must not mutate it.
func Catalog() []string {
	return catalog
}

func InCatalog(slot string) bool {
	for _, s := range catalog {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotStart anchors a catalog slot onto a calendar date.
func SlotStart(date time.Time, slot string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(SlotLayout, slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}

// BlockedByBusy maps external-calendar busy periods to the slots they block.
// A busy period blocks every whole-hour slot it overlaps: the start hour is
// rounded down, and the end boundary minus one millisecond is rounded down,
// so a period ending exactly on the hour does not block the next hour.
func BlockedByBusy(busy []Interval) map[string]bool {
	blocked := make(map[string]bool)
	for _, iv := range busy {
		if !iv.End.After(iv.Start) {
			continue
		}
		startHour := iv.Start.Hour()
		endHour := iv.End.Add(-time.Millisecond).Hour()
		for h := startHour; h <= endHour; h++ {
			blocked[fmt.Sprintf("%02d:00", h)] = true
		}
	}
	return blocked
}
