package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	overrideService "educontrol_backend/internals/features/attendance/overrides/service"
	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
)

// AccessService wires the stored summary and the override registry into the
// pure evaluator. Every consumer of "may this student see subject X" goes
// through EvaluateAccess so the rules live in exactly one place.
type AccessService struct {
	Overrides *overrideService.OverrideService
}

func NewAccessService() *AccessService {
	return &AccessService{Overrides: overrideService.NewOverrideService()}
}

func (s *AccessService) EvaluateAccess(db *gorm.DB, studentID, subjectID uuid.UUID) (Decision, error) {
	hasOverride, err := s.Overrides.HasActiveGrant(db, studentID, &subjectID)
	if err != nil {
		return Decision{}, err
	}

	var summary summaryModel.AttendanceSummaryModel
	err = db.
		Where("student_id = ? AND subject_id = ?", studentID, subjectID).
		Take(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Evaluate(nil, hasOverride), nil
	}
	if err != nil {
		return Decision{}, err
	}
	return Evaluate(&summary, hasOverride), nil
}

// CanAccess answers the content-level question for one item.
func (s *AccessService) CanAccess(db *gorm.DB, studentID, subjectID uuid.UUID, isAttendanceRequired bool) (bool, error) {
	if !isAttendanceRequired {
		return true, nil
	}
	decision, err := s.EvaluateAccess(db, studentID, subjectID)
	if err != nil {
		return false, err
	}
	return CanAccessContent(decision, isAttendanceRequired), nil
}
