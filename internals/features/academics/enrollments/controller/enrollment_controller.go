package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"educontrol_backend/internals/features/academics/enrollments/dto"
	"educontrol_backend/internals/features/academics/enrollments/model"
	"educontrol_backend/internals/features/academics/enrollments/service"
	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
	helper "educontrol_backend/internals/helpers"
)

type EnrollmentController struct {
	DB     *gorm.DB
	Roster *service.RosterService
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Roster: service.NewRosterService()}
}

var validate = validator.New()

/* ===================== ENROLL ===================== */
// POST /api/a/enrollments
func (ctrl *EnrollmentController) EnrollStudent(c *fiber.Ctx) error {
	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	enrollment := model.EnrollmentModel{
		StudentID:    studentID,
		SubjectID:    subjectID,
		AcademicYear: req.AcademicYear,
		IsActive:     true,
	}
	// re-enrolling reactivates the existing row
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "subject_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"is_active": true}),
	}).Create(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll student")
	}

	return helper.JsonCreated(c, "student enrolled", enrollment)
}

/* ===================== UNENROLL ===================== */
// DELETE /api/a/enrollments/:id
func (ctrl *EnrollmentController) UnenrollStudent(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	res := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("id = ?", enrollmentID).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonDeleted(c, "student unenrolled", fiber.Map{"enrollment_id": enrollmentID})
}

/* ===================== ROSTER ===================== */
// GET /api/a/subjects/:id/roster
func (ctrl *EnrollmentController) GetRoster(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	students, err := ctrl.Roster.ResolveRoster(ctrl.DB, subjectID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		studentIDs = append(studentIDs, s.ID)
	}

	summaryByStudent := map[uuid.UUID]summaryModel.AttendanceSummaryModel{}
	if len(studentIDs) > 0 {
		var summaries []summaryModel.AttendanceSummaryModel
		if err := ctrl.DB.
			Where("subject_id = ? AND student_id IN ?", subjectID, studentIDs).
			Find(&summaries).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, s := range summaries {
			summaryByStudent[s.StudentID] = s
		}
	}

	entries := make([]dto.RosterEntry, 0, len(students))
	for _, p := range students {
		var s *summaryModel.AttendanceSummaryModel
		if found, ok := summaryByStudent[p.ID]; ok {
			s = &found
		}
		entries = append(entries, dto.NewRosterEntry(p, s))
	}

	return helper.JsonOK(c, "roster fetched", entries)
}
