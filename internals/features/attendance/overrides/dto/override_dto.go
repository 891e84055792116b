package dto

import (
	"time"

	"github.com/google/uuid"

	"educontrol_backend/internals/features/attendance/overrides/service"
)

type GrantOverrideRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	SubjectID *string `json:"subject_id" validate:"omitempty,uuid"`
	Reason    string  `json:"reason" validate:"required,max=500"`
	ExpiresAt *string `json:"expires_at" validate:"omitempty"`
}

// ToInput parses the wire format. A missing subject_id means a global override,
// expires_at is RFC3339 when present.
func (r GrantOverrideRequest) ToInput(grantedBy uuid.UUID) (service.GrantInput, error) {
	in := service.GrantInput{GrantedBy: grantedBy, Reason: r.Reason}

	studentID, err := uuid.Parse(r.StudentID)
	if err != nil {
		return in, err
	}
	in.StudentID = studentID

	if r.SubjectID != nil {
		subjectID, err := uuid.Parse(*r.SubjectID)
		if err != nil {
			return in, err
		}
		in.SubjectID = &subjectID
	}
	if r.ExpiresAt != nil {
		expires, err := time.Parse(time.RFC3339, *r.ExpiresAt)
		if err != nil {
			return in, err
		}
		in.ExpiresAt = &expires
	}
	return in, nil
}
