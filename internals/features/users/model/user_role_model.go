package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRoleModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id;uniqueIndex:uq_user_roles_user_role" json:"user_id"`
	Role   string    `gorm:"type:varchar(20);not null;column:role;uniqueIndex:uq_user_roles_user_role" json:"role"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserRoleModel) TableName() string { return "user_roles" }
