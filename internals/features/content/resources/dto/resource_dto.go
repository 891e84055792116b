package dto

import (
	"github.com/google/uuid"

	"educontrol_backend/internals/features/content/resources/model"
)

type CreateResourceRequest struct {
	Title                string  `json:"title" validate:"required,max=200"`
	Description          *string `json:"description" validate:"omitempty,max=1000"`
	SubjectID            string  `json:"subject_id" validate:"required,uuid"`
	ResourceType         string  `json:"resource_type" validate:"required,oneof=recording notes guidance other"`
	FileURL              *string `json:"file_url" validate:"omitempty,url"`
	FileName             *string `json:"file_name" validate:"omitempty,max=255"`
	FileSize             *int64  `json:"file_size" validate:"omitempty,gte=0"`
	IsAttendanceRequired *bool   `json:"is_attendance_required"`
}

func (r CreateResourceRequest) ToModel(uploadedBy uuid.UUID) (*model.ResourceModel, error) {
	subjectID, err := uuid.Parse(r.SubjectID)
	if err != nil {
		return nil, err
	}

	// gated unless explicitly opened up
	required := true
	if r.IsAttendanceRequired != nil {
		required = *r.IsAttendanceRequired
	}

	return &model.ResourceModel{
		Title:                r.Title,
		Description:          r.Description,
		SubjectID:            subjectID,
		ResourceType:         r.ResourceType,
		FileURL:              r.FileURL,
		FileName:             r.FileName,
		FileSize:             r.FileSize,
		UploadedBy:           uploadedBy,
		IsAttendanceRequired: required,
		IsActive:             true,
	}, nil
}

// ResourceWithAccess wraps a resource with the caller's decision. Locked items
// keep their metadata visible but lose the file link.
type ResourceWithAccess struct {
	model.ResourceModel
	CanAccess bool `json:"can_access"`
}

func NewResourceWithAccess(m model.ResourceModel, canAccess bool) ResourceWithAccess {
	if !canAccess {
		m.FileURL = nil
	}
	return ResourceWithAccess{ResourceModel: m, CanAccess: canAccess}
}
