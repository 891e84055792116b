package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPickBranchIDs(t *testing.T) {
	b1 := uuid.New()
	b2 := uuid.New()
	legacy := uuid.New()
	nilID := uuid.Nil

	tests := []struct {
		name     string
		junction []uuid.UUID
		legacy   *uuid.UUID
		want     []uuid.UUID
	}{
		{
			name:     "junction rows win over legacy",
			junction: []uuid.UUID{b1, b2},
			legacy:   &legacy,
			want:     []uuid.UUID{b1, b2},
		},
		{
			name:   "legacy fallback when junction is empty",
			legacy: &legacy,
			want:   []uuid.UUID{legacy},
		},
		{
			name: "no links at all",
			want: nil,
		},
		{
			name:   "zero-value legacy is treated as unset",
			legacy: &nilID,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickBranchIDs(tt.junction, tt.legacy))
		})
	}
}
