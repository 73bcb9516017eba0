package booking

import (
	"context"
	"log"
	"time"

	"github.com/lumeabeauty/studio-scheduler/internal/calendar"
	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/timezone"
)

// calendar queries must not stall the availability response
const freeBusyTimeout = 3 * time.Second

type GetAvailability struct {
	repo domain.Repository
	cal  calendar.Client

	// injectable for the same-day lead-time tests
	now func() time.Time
}

func NewGetAvailability(repo domain.Repository, cal calendar.Client) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		cal:  cal,
		now:  timezone.Now,
	}
}

// Execute answers "which catalog slots are still free?" for a date and
// an optional staff filter. It is read-only.
//
// An unknown staff id does not fail the request: the filter is dropped
// and only the global booking conflicts apply.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	staffID := in.StaffID
	calendarID := ""

	if staffID != nil {
		staff, err := uc.repo.GetStaffByID(ctx, *staffID)
		switch {
		case err == nil:
			calendarID = staff.CalendarID
		case httperr.IsBusiness(err, "staff_not_found"):
			staffID = nil
		default:
			return nil, err
		}
	}

	bookings, err := uc.repo.ListBlockingBookings(ctx, in.Date, staffID)
	if err != nil {
		return nil, err
	}

	blocked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		blocked[b.Time] = true
	}

	if calendarID != "" {
		for slot := range uc.busySlots(ctx, calendarID, in.Date) {
			blocked[slot] = true
		}
	}

	loc := timezone.StudioLocation()
	now := uc.now().In(loc)
	sameDay := now.Year() == in.Date.Year() &&
		now.Month() == in.Date.Month() &&
		now.Day() == in.Date.Day()

	free := make([]string, 0, len(domain.Catalog()))
	for _, slot := range domain.Catalog() {
		if blocked[slot] {
			continue
		}
		if sameDay {
			start, err := domain.SlotStart(in.Date, slot, loc)
			if err != nil {
				continue
			}
			if start.Before(now.Add(domain.LeadTime)) {
				continue
			}
		}
		free = append(free, slot)
	}

	return free, nil
}

// busySlots asks the external calendar for busy periods and maps them
// onto blocked slots. Fail-open: if the provider is unreachable we
// block nothing extra rather than making the whole day unbookable.
func (uc *GetAvailability) busySlots(
	ctx context.Context,
	calendarID string,
	date time.Time,
) map[string]bool {

	loc := timezone.StudioLocation()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	cctx, cancel := context.WithTimeout(ctx, freeBusyTimeout)
	defer cancel()

	busy, err := uc.cal.FreeBusy(cctx, calendarID, dayStart, dayEnd)
	if err != nil {
		log.Println("calendar freebusy error:", err)
		return nil
	}

	return domain.BlockedByBusy(busy)
}
