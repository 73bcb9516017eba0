package booking

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	"github.com/lumeabeauty/studio-scheduler/internal/calendar"
	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
	"github.com/lumeabeauty/studio-scheduler/internal/notify"
	"github.com/lumeabeauty/studio-scheduler/internal/timezone"
)

// calendar writes are bounded so a slow provider cannot stall approval
const calendarTimeout = 3 * time.Second

type ApproveBooking struct {
	repo   domain.Repository
	cal    calendar.Client
	notify Notifier
	audit  Auditor
}

func NewApproveBooking(
	repo domain.Repository,
	cal calendar.Client,
	notifier Notifier,
	auditor Auditor,
) *ApproveBooking {
	return &ApproveBooking{
		repo:   repo,
		cal:    cal,
		notify: notifier,
		audit:  auditor,
	}
}

// Execute confirms a booking. Approving an already-confirmed booking
// returns it unchanged and triggers no side effects. Calendar sync and
// the confirmation email are best-effort: their failure is logged and
// the approval still succeeds.
func (uc *ApproveBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if domain.Status(b.Status) == domain.StatusConfirmed {
		return b, nil
	}

	domain.Approve(b)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.syncCalendar(ctx, b)

	uc.notify.Dispatch(notify.Event{
		Kind:    notify.KindBookingConfirmed,
		Booking: *b,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_approved",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *ApproveBooking) syncCalendar(ctx context.Context, b *models.Booking) {
	if b.StaffID == nil {
		return
	}

	staff, err := uc.repo.GetStaffByID(ctx, *b.StaffID)
	if err != nil || staff.CalendarID == "" {
		return
	}

	start, end, err := eventWindow(b)
	if err != nil {
		log.Println("calendar sync skipped:", err)
		return
	}

	// detached from the request context: approval is already committed
	cctx, cancel := context.WithTimeout(context.Background(), calendarTimeout)
	defer cancel()

	eventID, err := uc.cal.CreateEvent(cctx, staff.CalendarID, calendar.Event{
		Summary:     fmt.Sprintf("%s — %s", b.Service, b.ClientName),
		Description: fmt.Sprintf("Booking %s, phone %s", b.Code, b.ClientPhone),
		Start:       start,
		End:         end,
	})
	if err != nil {
		log.Println("calendar event create error:", err)
		return
	}

	b.CalendarEventID = eventID
	if err := uc.repo.UpdateBooking(cctx, b); err != nil {
		log.Println("failed to store calendar event id:", err)
	}
}

// eventWindow anchors the booking's slot and duration onto real times.
func eventWindow(b *models.Booking) (time.Time, time.Time, error) {
	loc := timezone.StudioLocation()

	start, err := domain.SlotStart(b.Date, b.Time, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	mins, err := strconv.Atoi(b.Duration)
	if err != nil || mins <= 0 {
		mins = 90
	}

	return start, start.Add(time.Duration(mins) * time.Minute), nil
}
