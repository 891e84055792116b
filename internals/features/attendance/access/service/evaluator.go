package service

import (
	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
)

// Decision is the final answer for one (student, subject) pair.
type Decision struct {
	Status    string `json:"status"`
	HasAccess bool   `json:"has_access"`
}

// Evaluate combines the cached summary with the override lookup result. Pure:
// no I/O, so the gating rules are testable straight from fixtures.
//
// An effective grant override wins over any computed status. A missing summary
// means no classes were held yet, which carries no penalty. Otherwise access
// follows the stored status: only blocked locks content.
func Evaluate(summary *summaryModel.AttendanceSummaryModel, hasOverride bool) Decision {
	if hasOverride {
		return Decision{Status: summaryModel.AccessStatusAllowed, HasAccess: true}
	}
	if summary == nil {
		return Decision{Status: summaryModel.AccessStatusAllowed, HasAccess: true}
	}
	return Decision{
		Status:    summary.AccessStatus,
		HasAccess: summary.AccessStatus != summaryModel.AccessStatusBlocked,
	}
}

// CanAccessContent applies the content's own flag on top of the decision:
// content that does not require attendance is open even to blocked students.
func CanAccessContent(d Decision, isAttendanceRequired bool) bool {
	if !isAttendanceRequired {
		return true
	}
	return d.HasAccess
}
