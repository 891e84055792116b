package model

import (
	"time"

	"github.com/google/uuid"
)

// Access status of a student for one subject, derived from the attendance
// percentage alone.
const (
	AccessStatusAllowed = "allowed"
	AccessStatusAtRisk  = "at_risk"
	AccessStatusBlocked = "blocked"
)

// Institutional attendance policy: 75% is the required minimum, 65% the hard
// floor below which gated content locks. Referenced by the aggregator, the
// evaluator and the UI badges alike, so they live here and nowhere else.
const (
	MinAttendancePercent = 75.0
	HardFloorPercent     = 65.0
)

// StatusForPercentage classifies a percentage against the policy thresholds.
func StatusForPercentage(pct float64) string {
	switch {
	case pct < HardFloorPercent:
		return AccessStatusBlocked
	case pct < MinAttendancePercent:
		return AccessStatusAtRisk
	default:
		return AccessStatusAllowed
	}
}

// PercentageFor computes the attendance percentage. No classes held yet means
// no penalty, so the empty case reads as 100.
func PercentageFor(attended, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(attended) / float64(total) * 100
}

// AttendanceSummaryModel is a derived cache over attendance_records: one row per
// (student, subject), always re-derivable from the full record set.
type AttendanceSummaryModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;column:student_id;uniqueIndex:uq_attendance_summary_pair" json:"student_id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;column:subject_id;uniqueIndex:uq_attendance_summary_pair" json:"subject_id"`

	TotalClasses         int     `gorm:"not null;default:0;column:total_classes" json:"total_classes"`
	ClassesAttended      int     `gorm:"not null;default:0;column:classes_attended" json:"classes_attended"`
	AttendancePercentage float64 `gorm:"not null;default:100;column:attendance_percentage" json:"attendance_percentage"`
	AccessStatus         string  `gorm:"type:varchar(10);not null;default:'allowed';column:access_status" json:"access_status"`

	LastUpdated time.Time `gorm:"not null;column:last_updated" json:"last_updated"`
}

func (AttendanceSummaryModel) TableName() string { return "attendance_summary" }
