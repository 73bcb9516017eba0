package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

// Blocks reports whether a booking in this status occupies its time slot.
// Rejected bookings free the slot back up.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}
