package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Shyam00111/Attendance-and-co-curriculum/config"
	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError: ให้ error ชน unique index กลายเป็น gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	// ----- AutoMigrate โครงสร้างทั้งหมดของเรา -----
	// unique index (student_id, date) ของ attendances ถูกสร้างตรงนี้ด้วย
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Attendance{},
		&models.Activity{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
