package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "educontrol_backend/internals/features/academics/enrollments/model"
	"educontrol_backend/internals/features/academics/subjects/model"
	overrideModel "educontrol_backend/internals/features/attendance/overrides/model"
	attendanceModel "educontrol_backend/internals/features/attendance/records/model"
	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
	assignmentModel "educontrol_backend/internals/features/content/assignments/model"
	resourceModel "educontrol_backend/internals/features/content/resources/model"
	helper "educontrol_backend/internals/helpers"
)

// DELETE /api/a/subjects/:id
//
// Administrative purge. Child rows must go before the subject itself or the FK
// constraints reject the delete: submissions -> assignments -> resources ->
// overrides -> summaries -> records -> enrollments -> junctions -> subject.
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("assignment_id IN (?)", tx.Model(&assignmentModel.AssignmentModel{}).
				Select("id").Where("subject_id = ?", subjectID)).
			Delete(&assignmentModel.SubmissionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&assignmentModel.AssignmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&resourceModel.ResourceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&overrideModel.AccessOverrideModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&summaryModel.AttendanceSummaryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&enrollmentModel.EnrollmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&model.SubjectBranchModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&model.TeacherSubjectModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SubjectModel{}, "id = ?", subjectID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}

	return helper.JsonDeleted(c, "subject deleted", fiber.Map{"subject_id": subjectID})
}
