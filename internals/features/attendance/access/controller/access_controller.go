package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educontrol_backend/internals/constants"
	"educontrol_backend/internals/features/attendance/access/service"
	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
	helper "educontrol_backend/internals/helpers"
)

type AccessController struct {
	DB      *gorm.DB
	Service *service.AccessService
}

func NewAccessController(db *gorm.DB) *AccessController {
	return &AccessController{DB: db, Service: service.NewAccessService()}
}

// GET /api/u/access/:subjectId?student_id=
//
// Students get their own decision; staff may pass student_id to inspect any
// student. Staff asking for themselves are always allowed (role bypass).
func (ctrl *AccessController) EvaluateAccess(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID := callerID
	if q := c.Query("student_id"); q != "" {
		if !constants.IsStaff(role) {
			return helper.JsonError(c, fiber.StatusForbidden, "You may only check your own access")
		}
		studentID, err = uuid.Parse(q)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
		}
	} else if constants.IsStaff(role) {
		return helper.JsonOK(c, "access evaluated", service.Decision{
			Status:    summaryModel.AccessStatusAllowed,
			HasAccess: true,
		})
	}

	decision, err := ctrl.Service.EvaluateAccess(ctrl.DB, studentID, subjectID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "access evaluated", decision)
}
