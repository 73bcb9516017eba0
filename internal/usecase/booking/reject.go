package booking

import (
	"context"

	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
	"github.com/lumeabeauty/studio-scheduler/internal/notify"
)

type RejectBooking struct {
	repo   domain.Repository
	notify Notifier
	audit  Auditor
}

func NewRejectBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
) *RejectBooking {
	return &RejectBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
	}
}

// Execute rejects a booking, freeing its slot. The reason is optional
// and included in the client email when given.
func (uc *RejectBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	domain.Reject(b, reason)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Kind:    notify.KindBookingRejected,
		Booking: *b,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_rejected",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
