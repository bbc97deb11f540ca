package models

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// บันทึกสถานะรายวันของนักเรียน — 1 แถวต่อ (student_id, date)
type Attendance struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	StudentID uint             `json:"studentId" gorm:"not null;uniqueIndex:idx_attendance_student_date"`
	Date      time.Time        `json:"date" gorm:"type:date;not null;uniqueIndex:idx_attendance_student_date"` // ตัดเวลาทิ้ง เหลือเที่ยงคืน UTC
	Status    AttendanceStatus `json:"status" gorm:"size:10;not null"`
	MarkedBy  uint             `json:"markedBy" gorm:"not null"` // user_id ของครู/แอดมินที่บันทึก

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
