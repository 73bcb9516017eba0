package booking

import (
	"context"
	"time"

	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	"github.com/lumeabeauty/studio-scheduler/internal/calendar"
	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
	"github.com/lumeabeauty/studio-scheduler/internal/notify"
)

// --- in-memory repository ---

type fakeRepo struct {
	staff    map[uint]*models.Staff
	bookings map[uint]*models.Booking
	nextID   uint

	// records the staff filter of the last availability query
	lastStaffFilter *uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		staff:    make(map[uint]*models.Staff),
		bookings: make(map[uint]*models.Booking),
	}
}

func (r *fakeRepo) addStaff(s models.Staff) *models.Staff {
	r.staff[s.ID] = &s
	return &s
}

func (r *fakeRepo) GetStaffByID(_ context.Context, id uint) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, httperr.ErrBusiness("staff_not_found")
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return httperr.ErrBusiness("booking_not_found")
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	if _, ok := r.bookings[id]; !ok {
		return httperr.ErrBusiness("booking_not_found")
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) ListBlockingBookings(
	_ context.Context,
	date time.Time,
	staffID *uint,
) ([]models.Booking, error) {

	r.lastStaffFilter = staffID

	day := date.Format(domain.DateLayout)
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date.Format(domain.DateLayout) != day {
			continue
		}
		if !domain.Status(b.Status).Blocks() {
			continue
		}
		if staffID != nil {
			if b.StaffID == nil || *b.StaffID != *staffID {
				continue
			}
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsByStatus(
	_ context.Context,
	status domain.Status,
) ([]models.Booking, error) {

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == string(status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --- calendar fake ---

type fakeCal struct {
	busy    []domain.Interval
	busyErr error

	createdEvents []calendar.Event
	createID      string
	createErr     error

	deleted []string
}

func (c *fakeCal) FreeBusy(context.Context, string, time.Time, time.Time) ([]domain.Interval, error) {
	return c.busy, c.busyErr
}

func (c *fakeCal) CreateEvent(_ context.Context, _ string, ev calendar.Event) (string, error) {
	if c.createErr != nil {
		return "", c.createErr
	}
	c.createdEvents = append(c.createdEvents, ev)
	if c.createID == "" {
		return "evt-1", nil
	}
	return c.createID, nil
}

func (c *fakeCal) DeleteEvent(_ context.Context, _ string, eventID string) error {
	c.deleted = append(c.deleted, eventID)
	return nil
}

var _ calendar.Client = (*fakeCal)(nil)

// --- side-effect recorders ---

type fakeNotifier struct {
	events []notify.Event
}

func (n *fakeNotifier) Dispatch(ev notify.Event) {
	n.events = append(n.events, ev)
}

type fakeAuditor struct {
	events []audit.Event
}

func (a *fakeAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}
