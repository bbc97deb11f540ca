package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

// GormStore เก็บ attendance ลง Postgres ผ่าน GORM
// unique index (student_id, date) ใน models.Attendance คือตัวบังคับ invariant
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// Upsert ทำ INSERT ... ON CONFLICT (student_id, date) DO UPDATE ในคำสั่งเดียว
// การ mark ซ้ำในวันเดิมคือเคสปกติ → ทับค่าเดิม ไม่ใช่ error
func (s *GormStore) Upsert(ctx context.Context, studentID uint, day time.Time, status models.AttendanceStatus, markedBy uint) (models.Attendance, error) {
	if !status.Valid() {
		return models.Attendance{}, ErrInvalidStatus
	}
	day = Day(day)

	rec := models.Attendance{
		StudentID: studentID,
		Date:      day,
		Status:    status,
		MarkedBy:  markedBy,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return models.Attendance{}, storeErr(err)
	}

	// กรณีชน conflict GORM ไม่เติม id/created_at ของแถวเดิมให้ → อ่านกลับเพื่อคืนค่า post-write
	var out models.Attendance
	if err := s.db.WithContext(ctx).
		Where("student_id = ? AND date = ?", studentID, day).
		First(&out).Error; err != nil {
		return models.Attendance{}, storeErr(err)
	}
	return out, nil
}

func (s *GormStore) Query(ctx context.Context, f Filter) ([]models.Attendance, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	tx := s.db.WithContext(ctx).Model(&models.Attendance{})
	if f.StudentID != 0 {
		tx = tx.Where("student_id = ?", f.StudentID)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.From != nil {
		tx = tx.Where("date >= ?", Day(*f.From))
	}
	if f.To != nil {
		tx = tx.Where("date <= ?", Day(*f.To))
	}

	// ล่าสุดก่อน — ฝั่ง report พึ่ง ordering นี้
	var rows []models.Attendance
	if err := tx.Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

func (s *GormStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Attendance{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// GormResolver หา user จากตาราง users เพื่อยืนยันว่า mark ได้
type GormResolver struct {
	db *gorm.DB
}

func NewGormResolver(db *gorm.DB) *GormResolver { return &GormResolver{db: db} }

func (r *GormResolver) FindByID(ctx context.Context, id uint) (*Identity, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &Identity{ID: u.ID, Role: u.Role, Name: u.Name}, nil
}
