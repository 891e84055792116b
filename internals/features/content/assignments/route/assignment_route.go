package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/content/assignments/controller"
)

func AssignmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentController(db)

	assignments := admin.Group("/assignments")
	assignments.Post("/", ctrl.CreateAssignment)
	assignments.Delete("/:id", ctrl.DeleteAssignment)

	admin.Patch("/submissions/:id/grade", ctrl.GradeSubmission)
}

func AssignmentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentController(db)

	assignments := user.Group("/assignments")
	assignments.Get("/", ctrl.ListAssignments)
	assignments.Post("/:id/submissions", ctrl.SubmitAssignment)
}
