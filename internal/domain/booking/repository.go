package booking

import (
	"context"
	"time"

	"github.com/lumeabeauty/studio-scheduler/internal/models"
)

type Repository interface {
	// -------- Staff --------
	GetStaffByID(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	// -------- Booking (create / read) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Availability --------
	// ListBlockingBookings returns pending and confirmed bookings for a
	// calendar date, optionally narrowed to one staff member.
	ListBlockingBookings(
		ctx context.Context,
		date time.Time,
		staffID *uint,
	) ([]models.Booking, error)

	// -------- Admin listing --------
	ListBookingsByStatus(
		ctx context.Context,
		status Status,
	) ([]models.Booking, error)
}
