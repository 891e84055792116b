package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/academics/enrollments/controller"
)

func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentController(db)

	enrollments := admin.Group("/enrollments")
	enrollments.Post("/", ctrl.EnrollStudent)
	enrollments.Delete("/:id", ctrl.UnenrollStudent)

	// roster is resolved through the same service the marking screen uses
	admin.Get("/subjects/:id/roster", ctrl.GetRoster)
}
