package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educontrol_backend/internals/constants"
	accessService "educontrol_backend/internals/features/attendance/access/service"
	recordService "educontrol_backend/internals/features/attendance/records/service"
	"educontrol_backend/internals/features/content/assignments/dto"
	"educontrol_backend/internals/features/content/assignments/model"
	helper "educontrol_backend/internals/helpers"
)

type AssignmentController struct {
	DB     *gorm.DB
	Access *accessService.AccessService
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db, Access: accessService.NewAccessService()}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /api/u/assignments?subject_id=
func (ctrl *AssignmentController) ListAssignments(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Where("is_active = ?", true).Order("due_date ASC")
	if s := c.Query("subject_id"); s != "" {
		subjectID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
		}
		q = q.Where("subject_id = ?", subjectID)
	}

	var assignments []model.AssignmentModel
	if err := q.Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	staff := constants.IsStaff(role)
	decisionBySubject := map[uuid.UUID]accessService.Decision{}

	out := make([]dto.AssignmentWithAccess, 0, len(assignments))
	for _, a := range assignments {
		canAccess := true
		if !staff && a.IsAttendanceRequired {
			decision, ok := decisionBySubject[a.SubjectID]
			if !ok {
				decision, err = ctrl.Access.EvaluateAccess(ctrl.DB, callerID, a.SubjectID)
				if err != nil {
					return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
				}
				decisionBySubject[a.SubjectID] = decision
			}
			canAccess = accessService.CanAccessContent(decision, a.IsAttendanceRequired)
		}
		out = append(out, dto.NewAssignmentWithAccess(a, canAccess))
	}

	return helper.JsonOK(c, "assignments fetched", out)
}

/* ===================== CREATE ===================== */
// POST /api/a/assignments
func (ctrl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	createdBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(createdBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID or due date")
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return helper.JsonCreated(c, "assignment created", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/a/assignments/:id (soft delete)
func (ctrl *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	res := ctrl.DB.Model(&model.AssignmentModel{}).
		Where("id = ?", assignmentID).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "assignment deleted", fiber.Map{"assignment_id": assignmentID})
}

/* ===================== SUBMIT ===================== */
// POST /api/u/assignments/:id/submissions
//
// The enforcement point: a blocked student cannot submit to a gated assignment.
func (ctrl *AssignmentController) SubmitAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.First(&assignment, "id = ? AND is_active = ?", assignmentID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	canAccess, err := ctrl.Access.CanAccess(ctrl.DB, studentID, assignment.SubjectID, assignment.IsAttendanceRequired)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !canAccess {
		return helper.JsonError(c, fiber.StatusForbidden,
			"This assignment is locked due to low attendance")
	}

	status := model.SubmissionStatusSubmitted
	if time.Now().After(assignment.DueDate) {
		status = model.SubmissionStatusLate
	}

	submission := model.SubmissionModel{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		FileURL:      req.FileURL,
		FileName:     req.FileName,
		Notes:        req.Notes,
		Status:       status,
	}
	if err := ctrl.DB.Create(&submission).Error; err != nil {
		if recordService.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You have already submitted this assignment")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit assignment")
	}
	return helper.JsonCreated(c, "assignment submitted", submission)
}

/* ===================== GRADE ===================== */
// PATCH /api/a/submissions/:id/grade
func (ctrl *AssignmentController) GradeSubmission(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	gradedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	status := model.SubmissionStatusGraded
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.SubmissionModel{}).
		Where("id = ?", submissionID).
		Updates(map[string]interface{}{
			"score":     req.Score,
			"feedback":  req.Feedback,
			"status":    status,
			"graded_at": now,
			"graded_by": gradedBy,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}
	return helper.JsonUpdated(c, "submission graded", fiber.Map{"submission_id": submissionID})
}
