package attendance

import (
	"context"

	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

// MarkInput หนึ่งรายการในคำขอ mark แบบ batch
type MarkInput struct {
	StudentID uint   `json:"studentId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

// MarkResult ผลลัพธ์ต่อรายการ — batch ไม่ล้มทั้งก้อนเพราะรายการเดียวพัง
type MarkResult struct {
	StudentID uint               `json:"studentId"`
	Success   bool               `json:"success"`
	Message   string             `json:"message,omitempty"`
	Record    *models.Attendance `json:"data,omitempty"`
}

type Stats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

type Report struct {
	Records []models.Attendance
	Stats   Stats
}

// Service ประกอบ batch mark (ตรวจ student ก่อน upsert) และ report
// ตัวตนคนบันทึกรับเป็น argument ตรง ๆ ไม่อ่านจาก state แฝง
type Service struct {
	store Store
	users IdentityResolver
}

func NewService(store Store, users IdentityResolver) *Service {
	return &Service{store: store, users: users}
}

// MarkBatch ไล่ประมวลผลตาม input ทีละรายการ เก็บผลเรียงตามลำดับเดิม
// รายการที่พัง (student ไม่มี / status หรือ date ผิด) ถูกรายงานใน MarkResult
// ส่วน error ของ store ถือเป็นปัญหาทั้ง call → คืน error ขึ้นไปเลย
// (write ที่สำเร็จไปแล้วก่อนหน้าไม่ rollback)
func (svc *Service) MarkBatch(ctx context.Context, records []MarkInput, markedBy uint) ([]MarkResult, error) {
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	results := make([]MarkResult, 0, len(records))
	for _, in := range records {
		res, err := svc.markOne(ctx, in, markedBy)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (svc *Service) markOne(ctx context.Context, in MarkInput, markedBy uint) (MarkResult, error) {
	student, err := svc.users.FindByID(ctx, in.StudentID)
	if err != nil {
		return MarkResult{}, err
	}
	// ไม่พบ หรือพบแต่ไม่ใช่ student → ปฏิบัติเหมือนกัน
	if student == nil || student.Role != models.RoleStudent {
		return MarkResult{StudentID: in.StudentID, Message: "Student not found"}, nil
	}

	status := models.AttendanceStatus(in.Status)
	if !status.Valid() {
		return MarkResult{StudentID: in.StudentID, Message: "Invalid status"}, nil
	}
	day, err := ParseDay(in.Date)
	if err != nil {
		return MarkResult{StudentID: in.StudentID, Message: "Invalid date"}, nil
	}

	rec, err := svc.store.Upsert(ctx, in.StudentID, day, status, markedBy)
	if err != nil {
		return MarkResult{}, err
	}
	return MarkResult{StudentID: in.StudentID, Success: true, Record: &rec}, nil
}

// Report อ่านอย่างเดียว เรียกพร้อม write ได้ ผล stats นับจากชุดที่ query เจอ
// ดังนั้น total = present + absent + late เสมอ
func (svc *Service) Report(ctx context.Context, f Filter) (Report, error) {
	recs, err := svc.store.Query(ctx, f)
	if err != nil {
		return Report{}, err
	}
	if recs == nil {
		recs = []models.Attendance{}
	}

	rep := Report{Records: recs}
	rep.Stats.Total = len(recs)
	for _, r := range recs {
		switch r.Status {
		case models.StatusPresent:
			rep.Stats.Present++
		case models.StatusAbsent:
			rep.Stats.Absent++
		case models.StatusLate:
			rep.Stats.Late++
		}
	}
	return rep, nil
}

func (svc *Service) Delete(ctx context.Context, id uint) error {
	return svc.store.Delete(ctx, id)
}
