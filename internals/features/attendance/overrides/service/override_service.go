package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/attendance/overrides/model"
)

type OverrideService struct{}

func NewOverrideService() *OverrideService { return &OverrideService{} }

type GrantInput struct {
	StudentID uuid.UUID
	SubjectID *uuid.UUID
	GrantedBy uuid.UUID
	Reason    string
	ExpiresAt *time.Time
}

func (s *OverrideService) Grant(db *gorm.DB, in GrantInput) (*model.AccessOverrideModel, error) {
	override := model.AccessOverrideModel{
		StudentID:    in.StudentID,
		SubjectID:    in.SubjectID,
		GrantedBy:    in.GrantedBy,
		Reason:       in.Reason,
		OverrideType: model.OverrideTypeGrant,
		ExpiresAt:    in.ExpiresAt,
		IsActive:     true,
	}
	if err := db.Create(&override).Error; err != nil {
		return nil, err
	}
	return &override, nil
}

func (s *OverrideService) Deactivate(db *gorm.DB, overrideID uuid.UUID) error {
	res := db.Model(&model.AccessOverrideModel{}).
		Where("id = ?", overrideID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasActiveGrant reports whether any grant override is in effect for the
// student, either global or scoped to the given subject. Expiry is checked
// here, not by a sweep.
func (s *OverrideService) HasActiveGrant(db *gorm.DB, studentID uuid.UUID, subjectID *uuid.UUID) (bool, error) {
	q := db.Model(&model.AccessOverrideModel{}).
		Where("student_id = ?", studentID).
		Where("override_type = ?", model.OverrideTypeGrant).
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", time.Now())

	if subjectID != nil {
		q = q.Where("subject_id IS NULL OR subject_id = ?", *subjectID)
	} else {
		q = q.Where("subject_id IS NULL")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListForStudent returns the student's overrides, newest first.
func (s *OverrideService) ListForStudent(db *gorm.DB, studentID uuid.UUID) ([]model.AccessOverrideModel, error) {
	var overrides []model.AccessOverrideModel
	err := db.
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&overrides).Error
	return overrides, err
}
