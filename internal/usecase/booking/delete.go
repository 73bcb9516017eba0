package booking

import (
	"context"
	"log"

	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	"github.com/lumeabeauty/studio-scheduler/internal/calendar"
	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	cal   calendar.Client
	audit Auditor
}

func NewDeleteBooking(
	repo domain.Repository,
	cal calendar.Client,
	auditor Auditor,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		cal:   cal,
		audit: auditor,
	}
}

// Execute hard-deletes a booking. A mirrored calendar event is removed
// first, best-effort: if the staff or their calendar is gone, or the
// provider errors, the delete still proceeds.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) error {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if b.CalendarEventID != "" && b.StaffID != nil {
		if staff, err := uc.repo.GetStaffByID(ctx, *b.StaffID); err == nil && staff.CalendarID != "" {
			cctx, cancel := context.WithTimeout(context.Background(), calendarTimeout)
			if err := uc.cal.DeleteEvent(cctx, staff.CalendarID, b.CalendarEventID); err != nil {
				log.Println("calendar event delete error:", err)
			}
			cancel()
		}
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
