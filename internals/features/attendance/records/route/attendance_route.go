package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/attendance/records/controller"
	"educontrol_backend/internals/middlewares"
)

func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := admin.Group("/attendance")
	attendance.Post("/mark", middlewares.MarkingRateLimiter(), ctrl.MarkAttendance)
	attendance.Get("/by-date", ctrl.GetAttendanceForDate)
}

func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := user.Group("/attendance")
	attendance.Get("/history/:studentId", ctrl.GetStudentHistory)
}
