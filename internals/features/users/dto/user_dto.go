package dto

import (
	"time"

	"github.com/google/uuid"

	"educontrol_backend/internals/features/users/model"
)

type CreateUserRequest struct {
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=8"`
	FullName         *string `json:"full_name" validate:"omitempty,max=120"`
	Phone            *string `json:"phone" validate:"omitempty,max=30"`
	Role             string  `json:"role" validate:"required,oneof=super_admin teacher student"`
	BranchID         *string `json:"branch_id" validate:"omitempty,uuid"`
	EnrollmentNumber *string `json:"enrollment_number" validate:"omitempty,max=50"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=super_admin teacher student"`
}

type UserResponse struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	FullName         *string    `json:"full_name,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	AvatarURL        *string    `json:"avatar_url,omitempty"`
	BranchID         *uuid.UUID `json:"branch_id,omitempty"`
	EnrollmentNumber *string    `json:"enrollment_number,omitempty"`
	Role             string     `json:"role"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromProfileModel(m model.ProfileModel, role string) UserResponse {
	return UserResponse{
		ID:               m.ID,
		Email:            m.Email,
		FullName:         m.FullName,
		Phone:            m.Phone,
		AvatarURL:        m.AvatarURL,
		BranchID:         m.BranchID,
		EnrollmentNumber: m.EnrollmentNumber,
		Role:             role,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
	}
}
