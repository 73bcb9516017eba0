package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
)

func TestApprove_ClearsRejectionReason(t *testing.T) {
	b := &models.Booking{
		Status:          string(StatusRejected),
		RejectionReason: "fully booked",
	}

	Approve(b)

	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.Empty(t, b.RejectionReason)
}

func TestApprove_AlreadyConfirmedIsNoop(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}

	Approve(b)

	assert.Equal(t, string(StatusConfirmed), b.Status)
}

func TestReject_StoresReason(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	Reject(b, "fully booked")

	assert.Equal(t, string(StatusRejected), b.Status)
	assert.Equal(t, "fully booked", b.RejectionReason)
}

func TestReject_TwiceRefreshesReason(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	Reject(b, "first")
	Reject(b, "second")

	assert.Equal(t, string(StatusRejected), b.Status)
	assert.Equal(t, "second", b.RejectionReason)
}

func TestModify_PartialUpdate(t *testing.T) {
	b := &models.Booking{
		Status:   string(StatusPending),
		Time:     "14:00",
		Duration: "90",
	}

	newTime := "15:30"
	require.NoError(t, Modify(b, &newTime, nil))
	assert.Equal(t, "15:30", b.Time)
	assert.Equal(t, "90", b.Duration)
	assert.Equal(t, string(StatusPending), b.Status)

	newDuration := "60"
	require.NoError(t, Modify(b, nil, &newDuration))
	assert.Equal(t, "15:30", b.Time)
	assert.Equal(t, "60", b.Duration)
}

func TestModify_RejectsNonCatalogTime(t *testing.T) {
	b := &models.Booking{Time: "14:00"}

	badTime := "14:17"
	err := Modify(b, &badTime, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
	assert.Equal(t, "14:00", b.Time)
}

func TestModify_RejectsEmptyDuration(t *testing.T) {
	b := &models.Booking{Duration: "90"}

	empty := ""
	err := Modify(b, nil, &empty)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
	assert.Equal(t, "90", b.Duration)
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusConfirmed.Blocks())
	assert.False(t, StatusRejected.Blocks())
}
