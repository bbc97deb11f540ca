package models

import "time"

// หมวดหมู่กิจกรรม (ชุดปิด ตามหน้าฟอร์มของ FE)
var ActivityCategories = []string{
	"Sports",
	"Academic",
	"Arts",
	"Community Service",
	"Leadership",
	"Cultural",
	"Technology",
	"Other",
}

func ValidActivityCategory(c string) bool {
	for _, v := range ActivityCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Activity struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentID   uint      `json:"studentId" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:500"`
	Category    string    `json:"category" gorm:"size:40;not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	AddedBy     uint      `json:"addedBy" gorm:"not null"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
