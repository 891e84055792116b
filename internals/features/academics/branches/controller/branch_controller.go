package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/academics/branches/dto"
	"educontrol_backend/internals/features/academics/branches/model"
	helper "educontrol_backend/internals/helpers"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

var validate = validator.New()

// GET /api/a/branches
func (ctrl *BranchController) ListBranches(c *fiber.Ctx) error {
	var branches []model.BranchModel
	if err := ctrl.DB.Order("name ASC").Find(&branches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "branches fetched", branches)
}

// POST /api/a/branches
func (ctrl *BranchController) CreateBranch(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create branch")
	}
	return helper.JsonCreated(c, "branch created", m)
}

// PATCH /api/a/branches/:id
func (ctrl *BranchController) UpdateBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID")
	}

	var req dto.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.BranchModel
	if err := ctrl.DB.First(&m, "id = ?", branchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update branch")
	}
	return helper.JsonUpdated(c, "branch updated", m)
}

// DELETE /api/a/branches/:id (soft delete via is_active)
func (ctrl *BranchController) DeleteBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID")
	}

	res := ctrl.DB.Model(&model.BranchModel{}).
		Where("id = ?", branchID).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
	}
	return helper.JsonDeleted(c, "branch deactivated", fiber.Map{"branch_id": branchID})
}
