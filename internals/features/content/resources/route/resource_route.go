package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/content/resources/controller"
)

func ResourceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceController(db)

	resources := admin.Group("/resources")
	resources.Post("/", ctrl.CreateResource)
	resources.Delete("/:id", ctrl.DeleteResource)
}

func ResourceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceController(db)

	resources := user.Group("/resources")
	resources.Get("/", ctrl.ListResources)
}
