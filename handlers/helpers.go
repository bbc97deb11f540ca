package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// fail ตอบ envelope แบบเดียวกับที่ FE อ่าน: {success:false, message}
func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "message": msg})
}

// แปลง string -> uint; แปลงไม่ได้คืน 0
func atouOr0(s string) uint {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// parseDate รับ YYYY-MM-DD หรือ RFC3339 (เก็บเวลาไว้ ไม่ตัดทิ้ง)
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// user id ที่ middleware แนบไว้ใน context
func currentUserID(c echo.Context) uint {
	id, _ := c.Get("user_id").(uint)
	return id
}

// ชน unique index ไหม (ต้องเปิด TranslateError ตอน gorm.Open)
func isDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
