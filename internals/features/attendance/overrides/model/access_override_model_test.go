package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsEffective(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	subjectA := uuid.New()
	subjectB := uuid.New()
	future := now.Add(24 * time.Hour)
	justExpired := now.Add(-time.Second)

	tests := []struct {
		name     string
		override AccessOverrideModel
		subject  *uuid.UUID
		want     bool
	}{
		{
			name:     "global grant applies to any subject",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: true},
			subject:  &subjectA,
			want:     true,
		},
		{
			name:     "global grant with no subject in question",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: true},
			subject:  nil,
			want:     true,
		},
		{
			name:     "subject grant matches its own subject",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: true, SubjectID: &subjectA},
			subject:  &subjectA,
			want:     true,
		},
		{
			name:     "subject grant does not leak to another subject",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: true, SubjectID: &subjectA},
			subject:  &subjectB,
			want:     false,
		},
		{
			name:     "subject grant needs a subject to match",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: true, SubjectID: &subjectA},
			subject:  nil,
			want:     false,
		},
		{
			name:     "unexpired grant",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: true, ExpiresAt: &future},
			subject:  &subjectA,
			want:     true,
		},
		{
			name:     "expired grant is dead even while is_active",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: true, ExpiresAt: &justExpired},
			subject:  &subjectA,
			want:     false,
		},
		{
			name:     "expiring exactly now is expired",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: true, ExpiresAt: &now},
			subject:  &subjectA,
			want:     false,
		},
		{
			name:     "deactivated grant",
			override: AccessOverrideModel{OverrideType: OverrideTypeGrant, IsActive: false},
			subject:  &subjectA,
			want:     false,
		},
		{
			name:     "revoke rows never grant",
			override: AccessOverrideModel{OverrideType: OverrideTypeRevoke, IsActive: true},
			subject:  &subjectA,
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.override.IsEffective(tt.subject, now))
		})
	}
}
