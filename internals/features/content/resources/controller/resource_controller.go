package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educontrol_backend/internals/constants"
	accessService "educontrol_backend/internals/features/attendance/access/service"
	"educontrol_backend/internals/features/content/resources/dto"
	"educontrol_backend/internals/features/content/resources/model"
	helper "educontrol_backend/internals/helpers"
)

type ResourceController struct {
	DB     *gorm.DB
	Access *accessService.AccessService
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db, Access: accessService.NewAccessService()}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /api/u/resources?subject_id=
//
// Staff see everything. Students get a can_access flag per item, evaluated
// once per subject, and locked items lose their file link.
func (ctrl *ResourceController) ListResources(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Where("is_active = ?", true).Order("created_at DESC")
	if s := c.Query("subject_id"); s != "" {
		subjectID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
		}
		q = q.Where("subject_id = ?", subjectID)
	}

	var resources []model.ResourceModel
	if err := q.Find(&resources).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	staff := constants.IsStaff(role)
	decisionBySubject := map[uuid.UUID]accessService.Decision{}

	out := make([]dto.ResourceWithAccess, 0, len(resources))
	for _, r := range resources {
		canAccess := true
		if !staff && r.IsAttendanceRequired {
			decision, ok := decisionBySubject[r.SubjectID]
			if !ok {
				decision, err = ctrl.Access.EvaluateAccess(ctrl.DB, callerID, r.SubjectID)
				if err != nil {
					return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
				}
				decisionBySubject[r.SubjectID] = decision
			}
			canAccess = accessService.CanAccessContent(decision, r.IsAttendanceRequired)
		}
		out = append(out, dto.NewResourceWithAccess(r, canAccess))
	}

	return helper.JsonOK(c, "resources fetched", out)
}

/* ===================== CREATE ===================== */
// POST /api/a/resources
func (ctrl *ResourceController) CreateResource(c *fiber.Ctx) error {
	uploadedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(uploadedBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create resource")
	}
	return helper.JsonCreated(c, "resource created", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/a/resources/:id (soft delete)
func (ctrl *ResourceController) DeleteResource(c *fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource ID")
	}

	res := ctrl.DB.Model(&model.ResourceModel{}).
		Where("id = ?", resourceID).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}
	return helper.JsonDeleted(c, "resource deleted", fiber.Map{"resource_id": resourceID})
}
