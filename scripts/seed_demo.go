// scripts/seed_demo.go
package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shyam00111/Attendance-and-co-curriculum/config"
	"github.com/Shyam00111/Attendance-and-co-curriculum/database"
	"github.com/Shyam00111/Attendance-and-co-curriculum/models"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func main() {
	// โหลด config และเชื่อม DB ตามที่ cmd/main.go ใช้จริง
	cfg := config.Load()
	database.Connect(cfg)

	seeds := []seedUser{
		{"Admin", "admin@school.edu", "admin123", models.RoleAdmin},
		{"Ms. Carter", "teacher@school.edu", "teach123", models.RoleTeacher},
		{"Alice Tan", "alice@school.edu", "student123", models.RoleStudent},
		{"Ben Osei", "ben@school.edu", "student123", models.RoleStudent},
		{"Chloe Park", "chloe@school.edu", "student123", models.RoleStudent},
	}

	for _, s := range seeds {
		// มีอยู่แล้ว → ข้าม (รันซ้ำได้)
		var existing models.User
		err := database.DB.Where("email = ?", s.Email).First(&existing).Error
		if err == nil {
			fmt.Println("⚠️  user already exists:", s.Email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		u := models.User{
			Name:     s.Name,
			Email:    s.Email,
			Password: string(hashed),
			Role:     s.Role,
		}
		if err := database.DB.Create(&u).Error; err != nil {
			log.Fatalf("failed to insert user %s: %v", s.Email, err)
		}
		fmt.Printf("✅ created %s (%s / %s)\n", s.Role, s.Email, s.Password)
	}

	fmt.Println("done — remember to change demo passwords outside dev!")
}
