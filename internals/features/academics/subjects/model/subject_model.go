package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Name        string  `gorm:"not null;column:name" json:"name"`
	Code        string  `gorm:"uniqueIndex;not null;column:code" json:"code"`
	Description *string `gorm:"column:description" json:"description,omitempty"`

	// Legacy single branch, kept for callers that predate subject_branches.
	// Roster resolution prefers the junction rows when any exist.
	BranchID *uuid.UUID `gorm:"type:uuid;column:branch_id;index" json:"branch_id,omitempty"`

	Credits  int  `gorm:"not null;default:0;column:credits" json:"credits"`
	Semester *int `gorm:"column:semester" json:"semester,omitempty"`

	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }
