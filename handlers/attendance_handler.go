package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Shyam00111/Attendance-and-co-curriculum/attendance"
	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

type AttendanceHandler struct {
	svc *attendance.Service
}

func NewAttendanceHandler(svc *attendance.Service) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// POST /attendance/mark
// body: {records: [{studentId, date, status}]} — markedBy มาจาก token เท่านั้น
// ตอบ 200 แม้บางรายการไม่สำเร็จ (ผลรายรายการอยู่ใน data)
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req struct {
		Records []attendance.MarkInput `json:"records"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide attendance records")
	}

	results, err := h.svc.MarkBatch(c.Request().Context(), req.Records, currentUserID(c))
	if err != nil {
		if errors.Is(err, attendance.ErrEmptyBatch) {
			return fail(c, http.StatusBadRequest, "Please provide attendance records")
		}
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    results,
	})
}

// GET /attendance/report?studentId=&status=&startDate=&endDate=
func (h *AttendanceHandler) Report(c echo.Context) error {
	f, err := reportFilter(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	rep, err := h.svc.Report(c.Request().Context(), f)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"count":   rep.Stats.Total,
		"stats":   rep.Stats,
		"data":    rep.Records,
	})
}

// filter ของ report เข้มกว่า batch: ค่าผิดรูปตัวเดียว → 400 ทั้ง call
func reportFilter(c echo.Context) (attendance.Filter, error) {
	var f attendance.Filter

	if v := strings.TrimSpace(c.QueryParam("studentId")); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return f, errors.New("Invalid studentId")
		}
		f.StudentID = uint(n)
	}
	if v := strings.TrimSpace(c.QueryParam("status")); v != "" {
		status := models.AttendanceStatus(v)
		if !status.Valid() {
			return f, errors.New("Invalid status")
		}
		f.Status = status
	}
	if v := strings.TrimSpace(c.QueryParam("startDate")); v != "" {
		day, err := attendance.ParseDay(v)
		if err != nil {
			return f, errors.New("Invalid startDate")
		}
		f.From = &day
	}
	if v := strings.TrimSpace(c.QueryParam("endDate")); v != "" {
		day, err := attendance.ParseDay(v)
		if err != nil {
			return f, errors.New("Invalid endDate")
		}
		f.To = &day
	}
	return f, nil
}

// DELETE /attendance/:id
func (h *AttendanceHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Attendance record not found")
		}
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": map[string]any{}})
}
