package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Shyam00111/Attendance-and-co-curriculum/attendance"
	"github.com/Shyam00111/Attendance-and-co-curriculum/config"
	"github.com/Shyam00111/Attendance-and-co-curriculum/database"
	"github.com/Shyam00111/Attendance-and-co-curriculum/handlers"
	"github.com/Shyam00111/Attendance-and-co-curriculum/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	std := handlers.NewStudentHandler()
	act := handlers.NewActivityHandler()

	// attendance core: store + resolver + service ต่อกับ DB จริงที่นี่ที่เดียว
	svc := attendance.NewService(
		attendance.NewGormStore(database.DB),
		attendance.NewGormResolver(database.DB),
	)
	att := handlers.NewAttendanceHandler(svc)

	// ===== Public =====
	e.GET("/", handlers.Root)
	e.GET("/health", handlers.Health)
	e.POST("/auth/register", auth.Register)
	e.POST("/auth/login", auth.Login)

	// ===== Protected =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	markerMW := middlewares.RequireRole("teacher", "admin")

	e.GET("/auth/me", auth.Me, authMW)
	e.GET("/students", std.List, authMW)

	attg := e.Group("/attendance", authMW)
	attg.POST("/mark", att.Mark, markerMW)
	attg.GET("/report", att.Report)
	attg.DELETE("/:id", att.Delete, markerMW)

	actg := e.Group("/activity", authMW)
	actg.POST("/add", act.Add)
	actg.GET("/all", act.List)
	actg.DELETE("/:id", act.Delete, markerMW)
}
