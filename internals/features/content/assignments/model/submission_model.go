package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusGraded    = "graded"
	SubmissionStatusLate      = "late"
	SubmissionStatusResubmit  = "resubmit"
)

type SubmissionModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	AssignmentID uuid.UUID `gorm:"type:uuid;not null;column:assignment_id;uniqueIndex:uq_submissions_assignment_student" json:"assignment_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;column:student_id;uniqueIndex:uq_submissions_assignment_student" json:"student_id"`

	FileURL  *string `gorm:"column:file_url" json:"file_url,omitempty"`
	FileName *string `gorm:"column:file_name" json:"file_name,omitempty"`
	Notes    *string `gorm:"column:notes" json:"notes,omitempty"`

	Score    *int    `gorm:"column:score" json:"score,omitempty"`
	Feedback *string `gorm:"column:feedback" json:"feedback,omitempty"`
	Status   string  `gorm:"type:varchar(10);not null;default:'submitted';column:status" json:"status"`

	SubmittedAt time.Time  `gorm:"not null;column:submitted_at;autoCreateTime" json:"submitted_at"`
	GradedAt    *time.Time `gorm:"column:graded_at" json:"graded_at,omitempty"`
	GradedBy    *uuid.UUID `gorm:"type:uuid;column:graded_by" json:"graded_by,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }
