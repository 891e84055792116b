package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/users/controller"
)

// UserAdminRoutes: super admin only user management.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/", ctrl.ListUsers)
	users.Post("/", ctrl.CreateUser)
	users.Get("/:id", ctrl.GetUser)
	users.Patch("/:id/role", ctrl.ChangeRole)
	users.Delete("/:id", ctrl.DeactivateUser)
}
