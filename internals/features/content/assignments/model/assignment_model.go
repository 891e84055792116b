package model

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Title       string  `gorm:"not null;column:title" json:"title"`
	Description *string `gorm:"column:description" json:"description,omitempty"`

	SubjectID uuid.UUID `gorm:"type:uuid;not null;column:subject_id;index" json:"subject_id"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;column:created_by" json:"created_by"`

	DueDate       time.Time `gorm:"not null;column:due_date" json:"due_date"`
	MaxScore      int       `gorm:"not null;default:100;column:max_score" json:"max_score"`
	AttachmentURL *string   `gorm:"column:attachment_url" json:"attachment_url,omitempty"`

	IsAttendanceRequired bool `gorm:"not null;default:true;column:is_attendance_required" json:"is_attendance_required"`
	IsActive             bool `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
