package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educontrol_backend/internals/constants"
	"educontrol_backend/internals/features/attendance/records/dto"
	"educontrol_backend/internals/features/attendance/records/service"
	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
	helper "educontrol_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: service.NewAttendanceService()}
}

var validate = validator.New()

/* ===================== MARK ===================== */
// POST /api/a/attendance/mark
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	subjectID, date, entries, err := req.ToEntries()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject, student or date in payload")
	}

	inserted, err := ctrl.Service.MarkAttendance(ctrl.DB, subjectID, date, markedBy, entries)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateAttendance):
			return helper.JsonError(c, fiber.StatusConflict,
				"Attendance for this date has already been marked and cannot be modified.")
		case errors.Is(err, service.ErrEmptyBatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "No valid entries to save")
		case errors.Is(err, service.ErrInvalidStatus),
			errors.Is(err, service.ErrDuplicateStudent):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attendance")
		}
	}

	return helper.JsonCreated(c, "attendance saved", fiber.Map{
		"inserted_count": inserted,
		"subject_id":     subjectID,
		"date":           req.Date,
	})
}

/* ===================== BY DATE ===================== */
// GET /api/a/attendance/by-date?subject_id=&date=
func (ctrl *AttendanceController) GetAttendanceForDate(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Query("subject_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}
	date, err := dto.ParseDate(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	records, err := ctrl.Service.GetRecords(ctrl.DB, subjectID, date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "attendance fetched", records)
}

/* ===================== HISTORY ===================== */
// GET /api/u/attendance/history/:studentId?limit=
//
// Students may only read their own history; staff may read anyone's.
func (ctrl *AttendanceController) GetStudentHistory(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !constants.IsStaff(role) && callerID != studentID {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own attendance")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var summaries []summaryModel.AttendanceSummaryModel
	if err := ctrl.DB.Where("student_id = ?", studentID).Find(&summaries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	records, err := ctrl.Service.GetHistory(ctrl.DB, studentID, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "history fetched", fiber.Map{
		"summaries": summaries,
		"records":   records,
	})
}
