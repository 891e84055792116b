package dto

import (
	"educontrol_backend/internals/features/academics/branches/model"
)

type CreateBranchRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Code        string  `json:"code" validate:"required,max=20"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type UpdateBranchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Code        *string `json:"code" validate:"omitempty,max=20"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

func (r CreateBranchRequest) ToModel() *model.BranchModel {
	return &model.BranchModel{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		IsActive:    true,
	}
}

// ApplyToModel patches only the provided fields.
func (r UpdateBranchRequest) ApplyToModel(m *model.BranchModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Code != nil {
		m.Code = *r.Code
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
