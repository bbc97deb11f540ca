package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root ใช้สำหรับ GET / (FE เช็คว่า server ตื่นอยู่)
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Server is running...")
}

// Health ใช้สำหรับ /health
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
