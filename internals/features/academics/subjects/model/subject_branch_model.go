package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectBranchModel links one subject to many branches. The effective roster of a
// subject without explicit enrollments is the union of active students across every
// linked branch.
type SubjectBranchModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	SubjectID uuid.UUID `gorm:"type:uuid;not null;column:subject_id;uniqueIndex:uq_subject_branches_pair" json:"subject_id"`
	BranchID  uuid.UUID `gorm:"type:uuid;not null;column:branch_id;uniqueIndex:uq_subject_branches_pair" json:"branch_id"`

	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SubjectBranchModel) TableName() string { return "subject_branches" }
