package dto

import (
	"time"

	"github.com/google/uuid"

	"educontrol_backend/internals/features/content/assignments/model"
)

type CreateAssignmentRequest struct {
	Title                string  `json:"title" validate:"required,max=200"`
	Description          *string `json:"description" validate:"omitempty,max=2000"`
	SubjectID            string  `json:"subject_id" validate:"required,uuid"`
	DueDate              string  `json:"due_date" validate:"required"`
	MaxScore             int     `json:"max_score" validate:"gte=1,lte=1000"`
	AttachmentURL        *string `json:"attachment_url" validate:"omitempty,url"`
	IsAttendanceRequired *bool   `json:"is_attendance_required"`
}

func (r CreateAssignmentRequest) ToModel(createdBy uuid.UUID) (*model.AssignmentModel, error) {
	subjectID, err := uuid.Parse(r.SubjectID)
	if err != nil {
		return nil, err
	}
	dueDate, err := time.Parse(time.RFC3339, r.DueDate)
	if err != nil {
		return nil, err
	}

	required := true
	if r.IsAttendanceRequired != nil {
		required = *r.IsAttendanceRequired
	}

	return &model.AssignmentModel{
		Title:                r.Title,
		Description:          r.Description,
		SubjectID:            subjectID,
		CreatedBy:            createdBy,
		DueDate:              dueDate,
		MaxScore:             r.MaxScore,
		AttachmentURL:        r.AttachmentURL,
		IsAttendanceRequired: required,
		IsActive:             true,
	}, nil
}

type SubmitAssignmentRequest struct {
	FileURL  *string `json:"file_url" validate:"omitempty,url"`
	FileName *string `json:"file_name" validate:"omitempty,max=255"`
	Notes    *string `json:"notes" validate:"omitempty,max=1000"`
}

type GradeSubmissionRequest struct {
	Score    int     `json:"score" validate:"gte=0"`
	Feedback *string `json:"feedback" validate:"omitempty,max=2000"`
	Status   *string `json:"status" validate:"omitempty,oneof=graded resubmit"`
}

// AssignmentWithAccess mirrors the resource listing: locked assignments stay
// visible but cannot be opened or submitted to.
type AssignmentWithAccess struct {
	model.AssignmentModel
	CanAccess bool `json:"can_access"`
}

func NewAssignmentWithAccess(m model.AssignmentModel, canAccess bool) AssignmentWithAccess {
	if !canAccess {
		m.AttachmentURL = nil
	}
	return AssignmentWithAccess{AssignmentModel: m, CanAccess: canAccess}
}
