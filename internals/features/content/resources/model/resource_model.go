package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ResourceTypeRecording = "recording"
	ResourceTypeNotes     = "notes"
	ResourceTypeGuidance  = "guidance"
	ResourceTypeOther     = "other"
)

// ResourceModel is gated content: whether a student may open it is decided by
// the access evaluator at read time, never stored here.
type ResourceModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Title       string  `gorm:"not null;column:title" json:"title"`
	Description *string `gorm:"column:description" json:"description,omitempty"`

	ResourceType string  `gorm:"type:varchar(10);not null;default:'other';column:resource_type" json:"resource_type"`
	FileURL      *string `gorm:"column:file_url" json:"file_url,omitempty"`
	FileName     *string `gorm:"column:file_name" json:"file_name,omitempty"`
	FileSize     *int64  `gorm:"column:file_size" json:"file_size,omitempty"`

	SubjectID  uuid.UUID `gorm:"type:uuid;not null;column:subject_id;index" json:"subject_id"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null;column:uploaded_by" json:"uploaded_by"`

	IsAttendanceRequired bool `gorm:"not null;default:true;column:is_attendance_required" json:"is_attendance_required"`
	IsActive             bool `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ResourceModel) TableName() string { return "resources" }
