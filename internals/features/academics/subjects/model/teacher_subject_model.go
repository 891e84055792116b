package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherSubjectModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	TeacherID    uuid.UUID `gorm:"type:uuid;not null;column:teacher_id;uniqueIndex:uq_teacher_subjects_pair" json:"teacher_id"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null;column:subject_id;uniqueIndex:uq_teacher_subjects_pair" json:"subject_id"`
	AcademicYear *string   `gorm:"column:academic_year" json:"academic_year,omitempty"`

	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }
