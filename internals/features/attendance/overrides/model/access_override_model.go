package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	OverrideTypeGrant  = "grant"
	OverrideTypeRevoke = "revoke"
)

// AccessOverrideModel is a manual exception to the computed access status.
// A nil SubjectID makes the override global for the student. Overrides are
// additive: the evaluator only consumes effective grants; revoke rows are
// stored for the audit trail but never force a block.
type AccessOverrideModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	StudentID uuid.UUID  `gorm:"type:uuid;not null;column:student_id;index" json:"student_id"`
	SubjectID *uuid.UUID `gorm:"type:uuid;column:subject_id;index" json:"subject_id,omitempty"`

	GrantedBy    uuid.UUID `gorm:"type:uuid;not null;column:granted_by" json:"granted_by"`
	Reason       string    `gorm:"not null;column:reason" json:"reason"`
	OverrideType string    `gorm:"type:varchar(10);not null;default:'grant';column:override_type" json:"override_type"`

	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
	IsActive  bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AccessOverrideModel) TableName() string { return "access_overrides" }

// IsEffective reports whether the override grants access at the given instant
// for the given subject. An expired row is dead even while is_active is still
// true — there is no background sweep, expiry is enforced at read time.
func (o AccessOverrideModel) IsEffective(subjectID *uuid.UUID, now time.Time) bool {
	if o.OverrideType != OverrideTypeGrant || !o.IsActive {
		return false
	}
	if o.ExpiresAt != nil && !o.ExpiresAt.After(now) {
		return false
	}
	if o.SubjectID == nil {
		return true // global
	}
	return subjectID != nil && *o.SubjectID == *subjectID
}
