package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
	"github.com/lumeabeauty/studio-scheduler/internal/timezone"
)

func futureDate(t *testing.T) time.Time {
	t.Helper()
	loc := timezone.StudioLocation()
	d := time.Now().In(loc).AddDate(0, 0, 7)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func uintPtr(v uint) *uint { return &v }

func availabilityUC(repo *fakeRepo, cal *fakeCal) *GetAvailability {
	return NewGetAvailability(repo, cal)
}

func TestGetAvailability_EmptyDayReturnsFullCatalog(t *testing.T) {
	uc := availabilityUC(newFakeRepo(), &fakeCal{})

	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: futureDate(t)})
	require.NoError(t, err)

	assert.Equal(t, domain.Catalog(), free)
}

func TestGetAvailability_PendingAndConfirmedBlock(t *testing.T) {
	repo := newFakeRepo()
	date := futureDate(t)

	repo.nextID = 10
	repo.bookings[1] = &models.Booking{ID: 1, Date: date, Time: "14:00", Status: "pending"}
	repo.bookings[2] = &models.Booking{ID: 2, Date: date, Time: "15:00", Status: "confirmed"}
	repo.bookings[3] = &models.Booking{ID: 3, Date: date, Time: "16:00", Status: "rejected"}

	uc := availabilityUC(repo, &fakeCal{})
	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: date})
	require.NoError(t, err)

	assert.NotContains(t, free, "14:00")
	assert.NotContains(t, free, "15:00")
	// a rejected booking frees its slot back up
	assert.Contains(t, free, "16:00")
}

func TestGetAvailability_StaffFilter(t *testing.T) {
	repo := newFakeRepo()
	date := futureDate(t)
	repo.addStaff(models.Staff{ID: 1, Name: "Ana", Category: "nails"})
	repo.addStaff(models.Staff{ID: 2, Name: "Eva", Category: "epilation"})

	repo.bookings[1] = &models.Booking{ID: 1, Date: date, Time: "14:00", Status: "pending", StaffID: uintPtr(2)}

	uc := availabilityUC(repo, &fakeCal{})

	// staff 1 has no bookings, 14:00 is free for her
	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: date, StaffID: uintPtr(1)})
	require.NoError(t, err)
	assert.Contains(t, free, "14:00")

	// staff 2 is booked at 14:00
	free, err = uc.Execute(context.Background(), domain.AvailabilityInput{Date: date, StaffID: uintPtr(2)})
	require.NoError(t, err)
	assert.NotContains(t, free, "14:00")
}

func TestGetAvailability_UnknownStaffFallsBackToGlobal(t *testing.T) {
	repo := newFakeRepo()
	date := futureDate(t)
	repo.bookings[1] = &models.Booking{ID: 1, Date: date, Time: "14:00", Status: "pending", StaffID: uintPtr(7)}

	uc := availabilityUC(repo, &fakeCal{})
	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: date, StaffID: uintPtr(999)})
	require.NoError(t, err)

	// the unknown staff filter is dropped, so the global conflict applies
	assert.Nil(t, repo.lastStaffFilter)
	assert.NotContains(t, free, "14:00")
}

func TestGetAvailability_CalendarBusyBlocksWholeHours(t *testing.T) {
	repo := newFakeRepo()
	date := futureDate(t)
	repo.addStaff(models.Staff{ID: 1, Name: "Ana", Category: "nails", CalendarID: "cal-ana"})

	loc := timezone.StudioLocation()
	cal := &fakeCal{busy: []domain.Interval{{
		Start: time.Date(date.Year(), date.Month(), date.Day(), 12, 10, 0, 0, loc),
		End:   time.Date(date.Year(), date.Month(), date.Day(), 13, 5, 0, 0, loc),
	}}}

	uc := availabilityUC(repo, cal)
	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: date, StaffID: uintPtr(1)})
	require.NoError(t, err)

	assert.NotContains(t, free, "12:00")
	assert.NotContains(t, free, "13:00")
	// busy periods only knock out whole-hour slots
	assert.Contains(t, free, "12:30")
	assert.Contains(t, free, "13:30")
}

func TestGetAvailability_CalendarErrorFailsOpen(t *testing.T) {
	repo := newFakeRepo()
	date := futureDate(t)
	repo.addStaff(models.Staff{ID: 1, Name: "Ana", Category: "nails", CalendarID: "cal-ana"})

	uc := availabilityUC(repo, &fakeCal{busyErr: errors.New("provider down")})
	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: date, StaffID: uintPtr(1)})

	require.NoError(t, err)
	assert.Equal(t, domain.Catalog(), free)
}

func TestGetAvailability_NoCalendarQueryWithoutCalendarID(t *testing.T) {
	repo := newFakeRepo()
	date := futureDate(t)
	repo.addStaff(models.Staff{ID: 1, Name: "Ana", Category: "nails"})

	// would block everything if queried
	cal := &fakeCal{busy: []domain.Interval{{
		Start: date,
		End:   date.Add(24 * time.Hour),
	}}}

	uc := availabilityUC(repo, cal)
	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: date, StaffID: uintPtr(1)})

	require.NoError(t, err)
	assert.Equal(t, domain.Catalog(), free)
}

func TestGetAvailability_SameDayLeadTime(t *testing.T) {
	repo := newFakeRepo()
	loc := timezone.StudioLocation()

	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	uc := availabilityUC(repo, &fakeCal{})
	uc.now = func() time.Time {
		return time.Date(today.Year(), today.Month(), today.Day(), 17, 15, 0, 0, loc)
	}

	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: today})
	require.NoError(t, err)

	// threshold is 18:15: every slot starting before it is gone
	assert.NotContains(t, free, "17:30")
	assert.NotContains(t, free, "18:00")
	assert.Contains(t, free, "18:30")
	assert.NotContains(t, free, "10:00")
}

func TestGetAvailability_LeadTimeOnlyAppliesToToday(t *testing.T) {
	uc := availabilityUC(newFakeRepo(), &fakeCal{})
	loc := timezone.StudioLocation()

	date := futureDate(t)
	uc.now = func() time.Time {
		n := time.Now().In(loc)
		return time.Date(n.Year(), n.Month(), n.Day(), 23, 0, 0, 0, loc)
	}

	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: date})
	require.NoError(t, err)
	assert.Equal(t, domain.Catalog(), free)
}

func TestGetAvailability_ResultIsCatalogSubsetInOrder(t *testing.T) {
	repo := newFakeRepo()
	date := futureDate(t)
	repo.bookings[1] = &models.Booking{ID: 1, Date: date, Time: "10:30", Status: "pending"}
	repo.bookings[2] = &models.Booking{ID: 2, Date: date, Time: "17:00", Status: "confirmed"}

	uc := availabilityUC(repo, &fakeCal{})
	free, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: date})
	require.NoError(t, err)

	idx := make(map[string]int)
	for i, s := range domain.Catalog() {
		idx[s] = i
	}

	prev := -1
	for _, s := range free {
		pos, inCatalog := idx[s]
		require.True(t, inCatalog, "%q is not a catalog slot", s)
		assert.Greater(t, pos, prev, "free slots out of catalog order")
		prev = pos
	}
}
