package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/attendance/records/model"
)

func TestValidateBatch(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	tests := []struct {
		name    string
		entries []MarkEntry
		wantErr error
	}{
		{
			name:    "empty batch",
			entries: nil,
			wantErr: ErrEmptyBatch,
		},
		{
			name: "valid batch with all statuses",
			entries: []MarkEntry{
				{StudentID: alice, Status: model.StatusPresent},
				{StudentID: bob, Status: model.StatusLate},
				{StudentID: uuid.New(), Status: model.StatusAbsent},
				{StudentID: uuid.New(), Status: model.StatusExcused},
			},
		},
		{
			name: "status outside the enum",
			entries: []MarkEntry{
				{StudentID: alice, Status: "tardy"},
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name: "same student twice",
			entries: []MarkEntry{
				{StudentID: alice, Status: model.StatusPresent},
				{StudentID: bob, Status: model.StatusPresent},
				{StudentID: alice, Status: model.StatusAbsent},
			},
			wantErr: ErrDuplicateStudent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(tt.entries)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

type fakeSQLStateErr struct{ code string }

func (e fakeSQLStateErr) Error() string    { return "duplicate key value violates unique constraint" }
func (e fakeSQLStateErr) SQLState() string { return e.code }

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "pq unique violation",
			err:  &pq.Error{Code: "23505"},
			want: true,
		},
		{
			name: "pq other constraint",
			err:  &pq.Error{Code: "23503"},
			want: false,
		},
		{
			name: "pgx-style SQLState",
			err:  fakeSQLStateErr{code: "23505"},
			want: true,
		},
		{
			name: "wrapped SQLState",
			err:  fmt.Errorf("create records: %w", fakeSQLStateErr{code: "23505"}),
			want: true,
		},
		{
			name: "SQLState other code",
			err:  fakeSQLStateErr{code: "40001"},
			want: false,
		},
		{
			name: "gorm translated duplicate",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}
