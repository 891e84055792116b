package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)

	subjects := admin.Group("/subjects")
	subjects.Get("/", ctrl.ListSubjects)
	subjects.Post("/", ctrl.CreateSubject)
	subjects.Patch("/:id", ctrl.UpdateSubject)
	subjects.Delete("/:id", ctrl.DeleteSubject)
	subjects.Put("/:id/branches", ctrl.LinkBranches)
	subjects.Post("/:id/teachers", ctrl.AssignTeacher)
}

func SubjectUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)

	subjects := user.Group("/subjects")
	subjects.Get("/mine", ctrl.ListTeacherSubjects)
}
