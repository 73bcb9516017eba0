package booking

import (
	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Approve moves a booking into confirmed and clears any rejection reason.
// Approving an already-confirmed booking is a no-op, not an error.
func Approve(b *models.Booking) {
	if Status(b.Status) == StatusConfirmed {
		return
	}
	b.Status = string(StatusConfirmed)
	b.RejectionReason = ""
}

// Reject moves a booking into rejected. Rejecting twice just refreshes
// the stored reason.
func Reject(b *models.Booking, reason string) {
	b.Status = string(StatusRejected)
	b.RejectionReason = reason
}

// Modify applies a partial time/duration update. Status is untouched;
// no slot-conflict re-check happens here (the operator picks the new time).
func Modify(b *models.Booking, newTime, newDuration *string) error {
	if newTime != nil {
		if !InCatalog(*newTime) {
			return httperr.ErrBusiness("invalid_time")
		}
		b.Time = *newTime
	}
	if newDuration != nil {
		if *newDuration == "" {
			return httperr.ErrBusiness("invalid_duration")
		}
		b.Duration = *newDuration
	}
	return nil
}
