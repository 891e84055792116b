package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfileModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Email    string  `gorm:"uniqueIndex;not null;column:email" json:"email"`
	FullName *string `gorm:"column:full_name" json:"full_name,omitempty"`
	Phone    *string `gorm:"column:phone" json:"phone,omitempty"`
	AvatarURL *string `gorm:"column:avatar_url" json:"avatar_url,omitempty"`

	// password hash is never serialized
	PasswordHash string `gorm:"not null;column:password_hash" json:"-"`

	BranchID         *uuid.UUID `gorm:"type:uuid;column:branch_id;index" json:"branch_id,omitempty"`
	EnrollmentNumber *string    `gorm:"column:enrollment_number" json:"enrollment_number,omitempty"`

	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }
