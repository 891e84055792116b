package dto

import (
	"github.com/google/uuid"

	"educontrol_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Code        string  `json:"code" validate:"required,max=20"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	BranchID    *string `json:"branch_id" validate:"omitempty,uuid"`
	Credits     int     `json:"credits" validate:"gte=0,lte=20"`
	Semester    *int    `json:"semester" validate:"omitempty,gte=1,lte=12"`
}

type UpdateSubjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Code        *string `json:"code" validate:"omitempty,max=20"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Credits     *int    `json:"credits" validate:"omitempty,gte=0,lte=20"`
	Semester    *int    `json:"semester" validate:"omitempty,gte=1,lte=12"`
	IsActive    *bool   `json:"is_active"`
}

type LinkBranchesRequest struct {
	BranchIDs []string `json:"branch_ids" validate:"required,min=1,dive,uuid"`
}

type AssignTeacherRequest struct {
	TeacherID    string  `json:"teacher_id" validate:"required,uuid"`
	AcademicYear *string `json:"academic_year" validate:"omitempty,max=20"`
}

func (r CreateSubjectRequest) ToModel() (*model.SubjectModel, error) {
	m := &model.SubjectModel{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		Credits:     r.Credits,
		Semester:    r.Semester,
		IsActive:    true,
	}
	if r.BranchID != nil {
		id, err := uuid.Parse(*r.BranchID)
		if err != nil {
			return nil, err
		}
		m.BranchID = &id
	}
	return m, nil
}

func (r UpdateSubjectRequest) ApplyToModel(m *model.SubjectModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Code != nil {
		m.Code = *r.Code
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Credits != nil {
		m.Credits = *r.Credits
	}
	if r.Semester != nil {
		m.Semester = r.Semester
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
