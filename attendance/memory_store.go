package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

// MemoryStore เก็บในหน่วยความจำ ใช้แทน GormStore ในเทสต์
// บังคับ invariant เดียวกัน: 1 แถวต่อ (student, วัน)
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	recs   map[memKey]models.Attendance
}

type memKey struct {
	student uint
	day     time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[memKey]models.Attendance)}
}

func (s *MemoryStore) Upsert(_ context.Context, studentID uint, day time.Time, status models.AttendanceStatus, markedBy uint) (models.Attendance, error) {
	if !status.Valid() {
		return models.Attendance{}, ErrInvalidStatus
	}
	day = Day(day)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	key := memKey{student: studentID, day: day}
	if rec, ok := s.recs[key]; ok {
		rec.Status = status
		rec.MarkedBy = markedBy
		rec.UpdatedAt = now
		s.recs[key] = rec
		return rec, nil
	}

	s.nextID++
	rec := models.Attendance{
		ID:        s.nextID,
		StudentID: studentID,
		Date:      day,
		Status:    status,
		MarkedBy:  markedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.recs[key] = rec
	return rec, nil
}

func (s *MemoryStore) Query(_ context.Context, f Filter) ([]models.Attendance, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Attendance, 0, len(s.recs))
	for _, rec := range s.recs {
		if f.StudentID != 0 && rec.StudentID != f.StudentID {
			continue
		}
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		if f.From != nil && rec.Date.Before(Day(*f.From)) {
			continue
		}
		if f.To != nil && rec.Date.After(Day(*f.To)) {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, rec := range s.recs {
		if rec.ID == id {
			delete(s.recs, key)
			return nil
		}
	}
	return ErrNotFound
}

// Len รายงานจำนวนแถวทั้งหมด (ไว้ assert ในเทสต์)
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}
