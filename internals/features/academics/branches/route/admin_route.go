package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/academics/branches/controller"
)

func BranchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBranchController(db)

	branches := admin.Group("/branches")
	branches.Get("/", ctrl.ListBranches)
	branches.Post("/", ctrl.CreateBranch)
	branches.Patch("/:id", ctrl.UpdateBranch)
	branches.Delete("/:id", ctrl.DeleteBranch)
}
