package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
)

func summaryWith(pct float64) *summaryModel.AttendanceSummaryModel {
	return &summaryModel.AttendanceSummaryModel{
		TotalClasses:         20,
		ClassesAttended:      int(float64(20) * pct / 100),
		AttendancePercentage: pct,
		AccessStatus:         summaryModel.StatusForPercentage(pct),
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		summary     *summaryModel.AttendanceSummaryModel
		hasOverride bool
		wantStatus  string
		wantAccess  bool
	}{
		{
			name:       "no summary means no classes held yet",
			summary:    nil,
			wantStatus: summaryModel.AccessStatusAllowed,
			wantAccess: true,
		},
		{
			name:       "allowed above minimum",
			summary:    summaryWith(90),
			wantStatus: summaryModel.AccessStatusAllowed,
			wantAccess: true,
		},
		{
			name:       "at risk still has access",
			summary:    summaryWith(70),
			wantStatus: summaryModel.AccessStatusAtRisk,
			wantAccess: true,
		},
		{
			name:       "blocked below floor",
			summary:    summaryWith(60),
			wantStatus: summaryModel.AccessStatusBlocked,
			wantAccess: false,
		},
		{
			name:        "override wins over blocked",
			summary:     summaryWith(10),
			hasOverride: true,
			wantStatus:  summaryModel.AccessStatusAllowed,
			wantAccess:  true,
		},
		{
			name:        "override with no summary",
			summary:     nil,
			hasOverride: true,
			wantStatus:  summaryModel.AccessStatusAllowed,
			wantAccess:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.summary, tt.hasOverride)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantAccess, got.HasAccess)
		})
	}
}

func TestCanAccessContent(t *testing.T) {
	blocked := Evaluate(summaryWith(40), false)
	allowed := Evaluate(summaryWith(90), false)

	// content that does not require attendance is open to everyone
	assert.True(t, CanAccessContent(blocked, false))
	assert.True(t, CanAccessContent(allowed, false))

	assert.False(t, CanAccessContent(blocked, true))
	assert.True(t, CanAccessContent(allowed, true))
}

// 20 classes, 12 attended -> 60% -> blocked; a global grant flips it to allowed.
func TestBlockedStudentWithOverride(t *testing.T) {
	s := summaryWith(60)
	assert.Equal(t, summaryModel.AccessStatusBlocked, s.AccessStatus)

	withoutOverride := Evaluate(s, false)
	assert.False(t, withoutOverride.HasAccess)

	withOverride := Evaluate(s, true)
	assert.Equal(t, summaryModel.AccessStatusAllowed, withOverride.Status)
	assert.True(t, withOverride.HasAccess)
}
