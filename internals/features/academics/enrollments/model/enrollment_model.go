package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;column:student_id;uniqueIndex:uq_enrollments_student_subject" json:"student_id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;column:subject_id;uniqueIndex:uq_enrollments_student_subject" json:"subject_id"`

	AcademicYear *string `gorm:"column:academic_year" json:"academic_year,omitempty"`

	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
