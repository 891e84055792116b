package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/attendance/overrides/dto"
	"educontrol_backend/internals/features/attendance/overrides/service"
	helper "educontrol_backend/internals/helpers"
)

type OverrideController struct {
	DB      *gorm.DB
	Service *service.OverrideService
}

func NewOverrideController(db *gorm.DB) *OverrideController {
	return &OverrideController{DB: db, Service: service.NewOverrideService()}
}

var validate = validator.New()

/* ===================== GRANT ===================== */
// POST /api/a/overrides
func (ctrl *OverrideController) GrantOverride(c *fiber.Ctx) error {
	grantedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GrantOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := req.ToInput(grantedBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student, subject or expiry in payload")
	}

	override, err := ctrl.Service.Grant(ctrl.DB, in)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to grant override")
	}
	return helper.JsonCreated(c, "override granted", override)
}

/* ===================== DEACTIVATE ===================== */
// PATCH /api/a/overrides/:id/deactivate
func (ctrl *OverrideController) DeactivateOverride(c *fiber.Ctx) error {
	overrideID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid override ID")
	}

	if err := ctrl.Service.Deactivate(ctrl.DB, overrideID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Override not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "override deactivated", fiber.Map{"override_id": overrideID})
}

/* ===================== LIST ===================== */
// GET /api/a/overrides/student/:studentId
func (ctrl *OverrideController) ListStudentOverrides(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	overrides, err := ctrl.Service.ListForStudent(ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "overrides fetched", overrides)
}
