package booking

import (
	"context"

	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
)

type ListBookingsByStatus struct {
	repo domain.Repository
}

func NewListBookingsByStatus(repo domain.Repository) *ListBookingsByStatus {
	return &ListBookingsByStatus{repo: repo}
}

func (uc *ListBookingsByStatus) Execute(
	ctx context.Context,
	status domain.Status,
) ([]models.Booking, error) {

	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	return uc.repo.ListBookingsByStatus(ctx, status)
}
