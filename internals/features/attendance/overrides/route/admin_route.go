package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/attendance/overrides/controller"
)

func OverrideAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOverrideController(db)

	overrides := admin.Group("/overrides")
	overrides.Post("/", ctrl.GrantOverride)
	overrides.Patch("/:id/deactivate", ctrl.DeactivateOverride)
	overrides.Get("/student/:studentId", ctrl.ListStudentOverrides)
}
