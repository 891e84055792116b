package dto

import (
	"time"

	"github.com/google/uuid"

	"educontrol_backend/internals/features/attendance/records/service"
)

const dateLayout = "2006-01-02"

type MarkEntryRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	Status    string  `json:"status" validate:"required,oneof=present absent late excused"`
	Notes     *string `json:"notes" validate:"omitempty,max=500"`
}

type MarkAttendanceRequest struct {
	SubjectID string             `json:"subject_id" validate:"required,uuid"`
	Date      string             `json:"date" validate:"required"`
	Records   []MarkEntryRequest `json:"records" validate:"required,dive"`
}

// ToEntries parses the wire format into service input.
func (r MarkAttendanceRequest) ToEntries() (uuid.UUID, time.Time, []service.MarkEntry, error) {
	subjectID, err := uuid.Parse(r.SubjectID)
	if err != nil {
		return uuid.Nil, time.Time{}, nil, err
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return uuid.Nil, time.Time{}, nil, err
	}

	entries := make([]service.MarkEntry, 0, len(r.Records))
	for _, rec := range r.Records {
		studentID, err := uuid.Parse(rec.StudentID)
		if err != nil {
			return uuid.Nil, time.Time{}, nil, err
		}
		entries = append(entries, service.MarkEntry{
			StudentID: studentID,
			Status:    rec.Status,
			Notes:     rec.Notes,
		})
	}
	return subjectID, date, entries, nil
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
