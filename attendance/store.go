package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

var (
	ErrInvalidStatus    = errors.New("invalid attendance status")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNotFound         = errors.New("attendance record not found")
	ErrStoreUnavailable = errors.New("attendance store unavailable")
	ErrEmptyBatch       = errors.New("no attendance records provided")
)

// Filter คัดกรองรายการ attendance; ค่า zero ของแต่ละฟิลด์ = ไม่กรอง
type Filter struct {
	StudentID uint
	Status    models.AttendanceStatus
	From      *time.Time // ขอบเขตรวมปลายทั้งสองด้าน
	To        *time.Time
}

// Store เก็บ attendance แบบ 1 แถวต่อ (student, วัน) — upsert ต้อง atomic
// ห้ามใช้วิธีอ่านก่อนแล้วค่อย insert
type Store interface {
	Upsert(ctx context.Context, studentID uint, day time.Time, status models.AttendanceStatus, markedBy uint) (models.Attendance, error)
	Query(ctx context.Context, f Filter) ([]models.Attendance, error)
	Delete(ctx context.Context, id uint) error
}

// Day normalizes t to midnight UTC. Write and read paths must both go
// through here so a record always lands on the same calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay รับ YYYY-MM-DD, RFC3339 และ timestamp ไม่ระบุ zone (ตีความเป็น UTC)
// แล้วตัดเหลือวันที่
func ParseDay(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

type Identity struct {
	ID   uint
	Role string
	Name string
}

// IdentityResolver ตอบว่า user id นี้มีอยู่ไหมและเป็น role อะไร
// คืน nil, nil เมื่อไม่พบ (ไม่ใช่ error)
type IdentityResolver interface {
	FindByID(ctx context.Context, id uint) (*Identity, error)
}

// ResolverFunc adapts a plain function to IdentityResolver.
type ResolverFunc func(ctx context.Context, id uint) (*Identity, error)

func (f ResolverFunc) FindByID(ctx context.Context, id uint) (*Identity, error) {
	return f(ctx, id)
}
