package booking

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
	"github.com/lumeabeauty/studio-scheduler/internal/notify"
	"github.com/lumeabeauty/studio-scheduler/internal/timezone"
	"github.com/lumeabeauty/studio-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	Service string

	StaffID *uint

	Date     string // YYYY-MM-DD
	Time     string // HH:MM, catalog slot
	Duration string // minutes, defaults to "90"

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify Notifier
	audit  Auditor
}

func NewCreateBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
	}
}

// Execute validates the request and inserts the booking as pending.
//
// There is deliberately no slot-conflict check here: availability is
// advisory, computed at read time. Two overlapping requests can both
// land as pending; the operator resolves that at approval time.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := validate(in); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(domain.DateLayout, in.Date, timezone.StudioLocation())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	duration := strings.TrimSpace(in.Duration)
	if duration == "" {
		duration = "90"
	}
	if mins, err := strconv.Atoi(duration); err != nil || mins <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	staffName := ""
	if in.StaffID != nil {
		staff, err := uc.repo.GetStaffByID(ctx, *in.StaffID)
		if err != nil {
			return nil, err
		}
		staffName = staff.Name
	}

	b := &models.Booking{
		Code:        uuid.NewString(),
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		Service:     strings.TrimSpace(in.Service),
		StaffID:     in.StaffID,
		StaffName:   staffName,
		Date:        date,
		Time:        in.Time,
		Duration:    duration,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Kind:    notify.KindBookingCreated,
		Booking: *b,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func validate(in CreateBookingInput) error {
	switch {
	case strings.TrimSpace(in.ClientName) == "":
		return httperr.ErrBusiness("missing_name")
	case strings.TrimSpace(in.ClientEmail) == "":
		return httperr.ErrBusiness("missing_email")
	case strings.TrimSpace(in.ClientPhone) == "":
		return httperr.ErrBusiness("missing_phone")
	case strings.TrimSpace(in.Service) == "":
		return httperr.ErrBusiness("missing_service")
	case strings.TrimSpace(in.Date) == "":
		return httperr.ErrBusiness("missing_date")
	case strings.TrimSpace(in.Time) == "":
		return httperr.ErrBusiness("missing_time")
	}

	if !validators.IsValidEmail(strings.TrimSpace(in.ClientEmail)) {
		return httperr.ErrBusiness("invalid_email")
	}

	if !domain.InCatalog(in.Time) {
		return httperr.ErrBusiness("invalid_time")
	}

	return nil
}
