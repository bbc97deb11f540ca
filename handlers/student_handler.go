package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shyam00111/Attendance-and-co-curriculum/database"
	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

// GET /students — รายชื่อ user ที่ role=student (หน้า mark attendance ใช้)
func (h *StudentHandler) List(c echo.Context) error {
	var rows []models.User
	if err := database.DB.
		Where("role = ?", models.RoleStudent).
		Order("name ASC, id ASC").
		Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	if rows == nil {
		rows = []models.User{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"count":   len(rows),
		"data":    rows,
	})
}
