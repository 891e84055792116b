package model

import (
	"time"

	"github.com/google/uuid"
)

type BranchModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Name        string  `gorm:"not null;column:name" json:"name"`
	Code        string  `gorm:"uniqueIndex;not null;column:code" json:"code"`
	Description *string `gorm:"column:description" json:"description,omitempty"`

	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BranchModel) TableName() string { return "branches" }
