package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educontrol_backend/internals/constants"
	userModel "educontrol_backend/internals/features/users/model"
)

// RosterService is the single place that answers "who belongs to this subject".
// Attendance marking and subject-student listings must both go through it so the
// enrollment path and the branch-fallback path can never drift apart.
type RosterService struct{}

func NewRosterService() *RosterService { return &RosterService{} }

// ResolveRoster returns the student profiles for a subject.
//
// Explicit active enrollment rows win. Without any, the roster falls back to every
// active student whose branch is linked to the subject (junction rows first, then
// the legacy subjects.branch_id). A subject with neither enrollments nor branches
// resolves to an empty roster, which is not an error.
func (s *RosterService) ResolveRoster(tx *gorm.DB, subjectID uuid.UUID) ([]userModel.ProfileModel, error) {
	var enrolled []userModel.ProfileModel
	if err := tx.Model(&userModel.ProfileModel{}).
		Joins("JOIN enrollments e ON e.student_id = profiles.id").
		Where("e.subject_id = ? AND e.is_active = ?", subjectID, true).
		Where("profiles.is_active = ?", true).
		Order("profiles.full_name ASC").
		Find(&enrolled).Error; err != nil {
		return nil, err
	}
	if len(enrolled) > 0 {
		return enrolled, nil
	}

	branchIDs, err := s.resolveBranchIDs(tx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(branchIDs) == 0 {
		return []userModel.ProfileModel{}, nil
	}

	var students []userModel.ProfileModel
	if err := tx.Model(&userModel.ProfileModel{}).
		Joins("JOIN user_roles ur ON ur.user_id = profiles.id").
		Where("ur.role = ?", constants.RoleStudent).
		Where("profiles.branch_id IN ?", branchIDs).
		Where("profiles.is_active = ?", true).
		Order("profiles.full_name ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// resolveBranchIDs picks the subject's linked branches: junction rows when any
// exist, otherwise the legacy single branch column.
func (s *RosterService) resolveBranchIDs(tx *gorm.DB, subjectID uuid.UUID) ([]uuid.UUID, error) {
	var junction []uuid.UUID
	if err := tx.Table("subject_branches").
		Where("subject_id = ? AND is_active = ?", subjectID, true).
		Pluck("branch_id", &junction).Error; err != nil {
		return nil, err
	}

	var legacy *uuid.UUID
	if len(junction) == 0 {
		if err := tx.Table("subjects").
			Select("branch_id").
			Where("id = ?", subjectID).
			Take(&legacy).Error; err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	return PickBranchIDs(junction, legacy), nil
}

// PickBranchIDs is the fallback choice itself, kept free of DB access: junction
// branches when present, else the legacy branch, else nothing.
func PickBranchIDs(junction []uuid.UUID, legacy *uuid.UUID) []uuid.UUID {
	if len(junction) > 0 {
		return junction
	}
	if legacy != nil && *legacy != uuid.Nil {
		return []uuid.UUID{*legacy}
	}
	return nil
}
