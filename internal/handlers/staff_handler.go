package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	"github.com/lumeabeauty/studio-scheduler/internal/httperr"
	"github.com/lumeabeauty/studio-scheduler/internal/httpresp"
	"github.com/lumeabeauty/studio-scheduler/internal/middleware"
	"github.com/lumeabeauty/studio-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type StaffHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewStaffHandler(db *gorm.DB, auditor *audit.Dispatcher) *StaffHandler {
	return &StaffHandler{db: db, audit: auditor}
}

// ======================================================
// REQUESTS
// ======================================================

var staffCategories = map[string]bool{
	"nails":       true,
	"epilation":   true,
	"cosmetology": true,
}

type StaffRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category" binding:"required"`
	CalendarID string `json:"calendar_id"`
	SortOrder  int    `json:"sort_order"`
}

// ======================================================
// PUBLIC LIST (booking form)
// ======================================================

func (h *StaffHandler) List(c *gin.Context) {
	q := h.db.Order("sort_order ASC, id ASC")

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var staff []models.Staff
	if err := q.Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff.")
		return
	}

	httpresp.List(c, staff)
}

// ======================================================
// ADMIN CRUD
// ======================================================

func (h *StaffHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing staff fields.")
		return
	}

	if !staffCategories[req.Category] {
		httperr.BadRequest(c, "invalid_category", "Category must be nails, epilation or cosmetology.")
		return
	}

	staff := models.Staff{
		Name:       req.Name,
		Category:   req.Category,
		CalendarID: req.CalendarID,
		SortOrder:  req.SortOrder,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Failed to create staff.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "staff_created",
		Entity:   "staff",
		EntityID: &staff.ID,
	})

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Staff id must be numeric.")
		return
	}

	var staff models.Staff
	if err := h.db.First(&staff, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff not found.")
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing staff fields.")
		return
	}

	if !staffCategories[req.Category] {
		httperr.BadRequest(c, "invalid_category", "Category must be nails, epilation or cosmetology.")
		return
	}

	staff.Name = req.Name
	staff.Category = req.Category
	staff.CalendarID = req.CalendarID
	staff.SortOrder = req.SortOrder

	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Failed to update staff.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "staff_updated",
		Entity:   "staff",
		EntityID: &staff.ID,
	})

	httpresp.OK(c, staff)
}

// Delete removes a staff member. Existing bookings keep their
// denormalized staff_name and are not touched.
func (h *StaffHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Staff id must be numeric.")
		return
	}

	res := h.db.Delete(&models.Staff{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Failed to delete staff.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "staff_not_found", "Staff not found.")
		return
	}

	staffID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "staff_deleted",
		Entity:   "staff",
		EntityID: &staffID,
	})

	c.Status(http.StatusNoContent)
}
