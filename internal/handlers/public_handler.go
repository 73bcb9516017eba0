package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/timezone"
	ucBooking "github.com/lumeabeauty/studio-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	createUC       *ucBooking.CreateBooking
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(
	createUC *ucBooking.CreateBooking,
	availabilityUC *ucBooking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		createUC:       createUC,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	Service     string `json:"service" binding:"required"`
	StaffID     *uint  `json:"staff_id"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Duration    string `json:"duration"`
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed booking fields.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Service:     req.Service,
		StaffID:     req.StaffID,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Notes:       req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

// Availability returns the blocked slots for a date (the client form
// subtracts them from the catalog it renders).
func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := time.ParseInLocation(domain.DateLayout, dateStr, timezone.StudioLocation())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var staffID *uint
	if s := c.Query("staffId"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "staffId must be numeric.")
			return
		}
		v := uint(id)
		staffID = &v
	}

	free, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:    date,
		StaffID: staffID,
	})
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to compute availability.")
		return
	}

	freeSet := make(map[string]bool, len(free))
	for _, slot := range free {
		freeSet[slot] = true
	}

	bookedTimes := make([]string, 0)
	for _, slot := range domain.Catalog() {
		if !freeSet[slot] {
			bookedTimes = append(bookedTimes, slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        dateStr,
		"bookedTimes": bookedTimes,
	})
}

////////////////////////////////////////////////////////
// ERROR MAPPING
////////////////////////////////////////////////////////

func mapBookingError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case "booking_not_found":
			httperr.NotFound(c, code, "Booking not found.")
		default:
			// validation failures, including an unknown staff id on create
			httperr.BadRequest(c, code, "Invalid booking data.")
		}
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong.")
}
