package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/attendance/access/controller"
)

func AccessUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAccessController(db)

	user.Get("/access/:subjectId", ctrl.EvaluateAccess)
}
