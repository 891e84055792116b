package dto

import (
	"github.com/google/uuid"

	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
	userModel "educontrol_backend/internals/features/users/model"
)

type EnrollStudentRequest struct {
	StudentID    string  `json:"student_id" validate:"required,uuid"`
	SubjectID    string  `json:"subject_id" validate:"required,uuid"`
	AcademicYear *string `json:"academic_year" validate:"omitempty,max=20"`
}

// RosterEntry is one student on a subject roster together with the rollup the
// marking screen shows next to the name.
type RosterEntry struct {
	StudentID        uuid.UUID `json:"student_id"`
	FullName         *string   `json:"full_name,omitempty"`
	Email            string    `json:"email"`
	EnrollmentNumber *string   `json:"enrollment_number,omitempty"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`

	TotalClasses         int     `json:"total_classes"`
	ClassesAttended      int     `json:"classes_attended"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	AccessStatus         string  `json:"access_status"`
}

func NewRosterEntry(p userModel.ProfileModel, s *summaryModel.AttendanceSummaryModel) RosterEntry {
	entry := RosterEntry{
		StudentID:        p.ID,
		FullName:         p.FullName,
		Email:            p.Email,
		EnrollmentNumber: p.EnrollmentNumber,
		AvatarURL:        p.AvatarURL,
		// no classes held yet carries no penalty
		TotalClasses:         0,
		ClassesAttended:      0,
		AttendancePercentage: 100,
		AccessStatus:         summaryModel.AccessStatusAllowed,
	}
	if s != nil {
		entry.TotalClasses = s.TotalClasses
		entry.ClassesAttended = s.ClassesAttended
		entry.AttendancePercentage = s.AttendancePercentage
		entry.AccessStatus = s.AccessStatus
	}
	return entry
}
