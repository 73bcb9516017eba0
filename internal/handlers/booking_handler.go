package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/lumeabeauty/studio-scheduler/internal/domain/booking"
	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/httpresp"
	"github.com/lumeabeauty/studio-scheduler/internal/middleware"
	ucBooking "github.com/lumeabeauty/studio-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler covers the operator dashboard: listing requests and
// driving the pending → confirmed | rejected state machine.
type BookingHandler struct {
	listUC    *ucBooking.ListBookingsByStatus
	getUC     *ucBooking.GetBooking
	approveUC *ucBooking.ApproveBooking
	rejectUC  *ucBooking.RejectBooking
	modifyUC  *ucBooking.ModifyBooking
	deleteUC  *ucBooking.DeleteBooking
}

func NewBookingHandler(
	listUC *ucBooking.ListBookingsByStatus,
	getUC *ucBooking.GetBooking,
	approveUC *ucBooking.ApproveBooking,
	rejectUC *ucBooking.RejectBooking,
	modifyUC *ucBooking.ModifyBooking,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		listUC:    listUC,
		getUC:     getUC,
		approveUC: approveUC,
		rejectUC:  rejectUC,
		modifyUC:  modifyUC,
		deleteUC:  deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RejectBookingRequest struct {
	Reason string `json:"reason"`
}

type ModifyBookingRequest struct {
	Time     *string `json:"time"`
	Duration *string `json:"duration"`
}

// ======================================================
// LISTS
// ======================================================

func (h *BookingHandler) ListPending(c *gin.Context) {
	h.listByStatus(c, domain.StatusPending)
}

func (h *BookingHandler) ListConfirmed(c *gin.Context) {
	h.listByStatus(c, domain.StatusConfirmed)
}

func (h *BookingHandler) listByStatus(c *gin.Context, status domain.Status) {
	bookings, err := h.listUC.Execute(c.Request.Context(), status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// APPROVE / REJECT
// ======================================================

func (h *BookingHandler) Approve(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.approveUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req RejectBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Malformed reject body.")
			return
		}
	}

	b, err := h.rejectUC.Execute(c.Request.Context(), userID, id, req.Reason)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// MODIFY
// ======================================================

func (h *BookingHandler) Modify(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed modify body.")
		return
	}

	if req.Time == nil && req.Duration == nil {
		httperr.BadRequest(c, "nothing_to_modify", "Provide time and/or duration.")
		return
	}

	b, err := h.modifyUC.Execute(c.Request.Context(), userID, id, req.Time, req.Duration)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, id); err != nil {
		mapBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return 0, false
	}
	return uint(id), true
}
