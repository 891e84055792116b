package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

var AllStatuses = []string{StatusPresent, StatusAbsent, StatusLate, StatusExcused}

// AttendedStatuses count toward the percentage: late still counts as attended,
// it is only displayed differently.
var AttendedStatuses = []string{StatusPresent, StatusLate}

func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// AttendanceRecordModel is one day's mark for one student in one subject.
// Append-only: rows are never updated or deleted outside an administrative
// subject purge. The composite unique index is the lock that makes a marked
// date immutable — and the sole guard against two concurrent markings.
type AttendanceRecordModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	StudentID uuid.UUID      `gorm:"type:uuid;not null;column:student_id;uniqueIndex:uq_attendance_records_tuple" json:"student_id"`
	SubjectID uuid.UUID      `gorm:"type:uuid;not null;column:subject_id;uniqueIndex:uq_attendance_records_tuple" json:"subject_id"`
	Date      datatypes.Date `gorm:"not null;column:date;uniqueIndex:uq_attendance_records_tuple" json:"date"`

	Status   string    `gorm:"type:varchar(10);not null;column:status" json:"status"`
	MarkedBy uuid.UUID `gorm:"type:uuid;not null;column:marked_by" json:"marked_by"`
	Notes    *string   `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
