package booking

import (
	"context"

	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
)

type ModifyBooking struct {
	repo  domain.Repository
	audit Auditor
}

func NewModifyBooking(
	repo domain.Repository,
	auditor Auditor,
) *ModifyBooking {
	return &ModifyBooking{
		repo:  repo,
		audit: auditor,
	}
}

// Execute applies a partial time/duration update without touching the
// status. The operator picks the new time; no conflict re-check runs.
func (uc *ModifyBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
	newTime *string,
	newDuration *string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Modify(b, newTime, newDuration); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_modified",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"time":     b.Time,
			"duration": b.Duration,
		},
	})

	return b, nil
}
