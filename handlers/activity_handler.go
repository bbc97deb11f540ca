package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Shyam00111/Attendance-and-co-curriculum/database"
	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

type ActivityHandler struct{}

func NewActivityHandler() *ActivityHandler { return &ActivityHandler{} }

type activityPayload struct {
	StudentID   uint   `json:"studentId" validate:"required"`
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Category    string `json:"category" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

// POST /activity/add
func (h *ActivityHandler) Add(c echo.Context) error {
	var req activityPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide studentId, title, category and date")
	}
	if !models.ValidActivityCategory(req.Category) {
		return fail(c, http.StatusBadRequest, "Invalid category")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid date")
	}

	// ตรวจว่า student มีจริง
	var student models.User
	if err := database.DB.First(&student, req.StudentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fail(c, http.StatusNotFound, "Student not found")
		}
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	act := models.Activity{
		StudentID:   req.StudentID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		AddedBy:     currentUserID(c),
	}
	if err := database.DB.Create(&act).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "data": act})
}

// GET /activity/all?studentId=&category=&startDate=&endDate=
// ช่วงวันที่จะถูกใช้ก็ต่อเมื่อส่งมาครบทั้งสองด้าน
func (h *ActivityHandler) List(c echo.Context) error {
	// ตรวจ filter ให้ครบก่อนแตะ DB — ค่าผิดรูป → 400 แบบเดียวกับฝั่ง report
	var studentID uint
	if v := strings.TrimSpace(c.QueryParam("studentId")); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fail(c, http.StatusBadRequest, "Invalid studentId")
		}
		studentID = uint(n)
	}
	category := strings.TrimSpace(c.QueryParam("category"))

	start := strings.TrimSpace(c.QueryParam("startDate"))
	end := strings.TrimSpace(c.QueryParam("endDate"))
	var from, to time.Time
	useRange := false
	if start != "" && end != "" {
		var err1, err2 error
		from, err1 = parseDate(start)
		to, err2 = parseDate(end)
		if err1 != nil || err2 != nil {
			return fail(c, http.StatusBadRequest, "Invalid date range")
		}
		useRange = true
	}

	tx := database.DB.Model(&models.Activity{})
	if studentID != 0 {
		tx = tx.Where("student_id = ?", studentID)
	}
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	if useRange {
		tx = tx.Where("date >= ? AND date <= ?", from, to)
	}

	var rows []models.Activity
	if err := tx.Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	if rows == nil {
		rows = []models.Activity{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"count":   len(rows),
		"data":    rows,
	})
}

// DELETE /activity/:id
func (h *ActivityHandler) Delete(c echo.Context) error {
	id := atouOr0(c.Param("id"))

	var act models.Activity
	if err := database.DB.First(&act, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fail(c, http.StatusNotFound, "Activity not found")
		}
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	if err := database.DB.Delete(&act).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": map[string]any{}})
}
