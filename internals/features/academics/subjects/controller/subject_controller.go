package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"educontrol_backend/internals/features/academics/subjects/dto"
	"educontrol_backend/internals/features/academics/subjects/model"
	helper "educontrol_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /api/a/subjects
func (ctrl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := ctrl.DB.Order("name ASC").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "subjects fetched", subjects)
}

/* ===================== CREATE ===================== */
// POST /api/a/subjects
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		// mirror the legacy branch into the junction so both roster paths agree
		if m.BranchID != nil {
			link := model.SubjectBranchModel{
				SubjectID: m.ID,
				BranchID:  *m.BranchID,
				IsActive:  true,
			}
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helper.JsonCreated(c, "subject created", m)
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/subjects/:id
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.SubjectModel
	if err := ctrl.DB.First(&m, "id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "subject updated", m)
}

/* ===================== LINK BRANCHES ===================== */
// PUT /api/a/subjects/:id/branches
func (ctrl *SubjectController) LinkBranches(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var req dto.LinkBranchesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	branchIDs := make([]uuid.UUID, 0, len(req.BranchIDs))
	for _, s := range req.BranchIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID: "+s)
		}
		branchIDs = append(branchIDs, id)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ?", subjectID).
			Delete(&model.SubjectBranchModel{}).Error; err != nil {
			return err
		}
		for _, branchID := range branchIDs {
			link := model.SubjectBranchModel{
				SubjectID: subjectID,
				BranchID:  branchID,
				IsActive:  true,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		// first linked branch becomes the legacy primary branch
		return tx.Model(&model.SubjectModel{}).
			Where("id = ?", subjectID).
			Update("branch_id", branchIDs[0]).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link branches")
	}

	return helper.JsonUpdated(c, "branches linked", fiber.Map{
		"subject_id": subjectID,
		"branch_ids": branchIDs,
	})
}

/* ===================== ASSIGN TEACHER ===================== */
// POST /api/a/subjects/:id/teachers
func (ctrl *SubjectController) AssignTeacher(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var req dto.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	link := model.TeacherSubjectModel{
		TeacherID:    teacherID,
		SubjectID:    subjectID,
		AcademicYear: req.AcademicYear,
		IsActive:     true,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign teacher")
	}
	return helper.JsonCreated(c, "teacher assigned", link)
}

/* ===================== TEACHER SUBJECTS ===================== */
// GET /api/u/subjects/mine
func (ctrl *SubjectController) ListTeacherSubjects(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var subjects []model.SubjectModel
	if err := ctrl.DB.
		Joins("JOIN teacher_subjects ts ON ts.subject_id = subjects.id").
		Where("ts.teacher_id = ? AND ts.is_active = ?", teacherID, true).
		Where("subjects.is_active = ?", true).
		Order("subjects.name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "teacher subjects fetched", subjects)
}
