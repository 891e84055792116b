package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/attendance/records/model"
	summaryService "educontrol_backend/internals/features/attendance/summary/service"
)

var (
	// ErrDuplicateAttendance: the (student, subject, date) tuple already exists.
	// Attendance is a legal record; a marked date is locked and the whole batch
	// is rejected, nothing is overwritten.
	ErrDuplicateAttendance = errors.New("attendance for this date has already been marked and cannot be modified")

	// ErrEmptyBatch: marking against an empty roster must not silently succeed
	// with zero rows.
	ErrEmptyBatch = errors.New("no valid entries to save")

	// ErrInvalidStatus: an entry carries a status outside the enum.
	ErrInvalidStatus = errors.New("invalid attendance status")

	// ErrDuplicateStudent: the same student appears twice in one batch.
	ErrDuplicateStudent = errors.New("duplicate student in batch")
)

const uniqueViolationCode = "23505"

// MarkEntry is one student's mark inside a batch. Subject and date come from
// the batch header so a submission always represents a single class session.
type MarkEntry struct {
	StudentID uuid.UUID
	Status    string
	Notes     *string
}

type AttendanceService struct {
	Summary *summaryService.SummaryService
}

func NewAttendanceService() *AttendanceService {
	return &AttendanceService{Summary: summaryService.NewSummaryService()}
}

// ValidateBatch checks a batch before it touches the database.
func ValidateBatch(entries []MarkEntry) error {
	if len(entries) == 0 {
		return ErrEmptyBatch
	}
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		if !model.IsValidStatus(e.Status) {
			return ErrInvalidStatus
		}
		if _, dup := seen[e.StudentID]; dup {
			return ErrDuplicateStudent
		}
		seen[e.StudentID] = struct{}{}
	}
	return nil
}

// MarkAttendance inserts a whole class session in one transaction and recomputes
// the affected rollups before committing. All-or-nothing: any unique violation
// means the date was already marked for this subject and the batch fails in full.
func (s *AttendanceService) MarkAttendance(
	db *gorm.DB,
	subjectID uuid.UUID,
	date time.Time,
	markedBy uuid.UUID,
	entries []MarkEntry,
) (int, error) {
	if err := ValidateBatch(entries); err != nil {
		return 0, err
	}

	rows := make([]model.AttendanceRecordModel, 0, len(entries))
	studentIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.AttendanceRecordModel{
			StudentID: e.StudentID,
			SubjectID: subjectID,
			Date:      datatypes.Date(date),
			Status:    e.Status,
			MarkedBy:  markedBy,
			Notes:     e.Notes,
		})
		studentIDs = append(studentIDs, e.StudentID)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			if IsUniqueViolation(err) {
				return ErrDuplicateAttendance
			}
			return err
		}
		return s.Summary.RecomputeAll(tx, subjectID, studentIDs)
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// GetRecords lists the marks of one subject for one date.
func (s *AttendanceService) GetRecords(db *gorm.DB, subjectID uuid.UUID, date time.Time) ([]model.AttendanceRecordModel, error) {
	var records []model.AttendanceRecordModel
	err := db.
		Where("subject_id = ? AND date = ?", subjectID, datatypes.Date(date)).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

// GetHistory lists a student's most recent marks across all subjects.
func (s *AttendanceService) GetHistory(db *gorm.DB, studentID uuid.UUID, limit int) ([]model.AttendanceRecordModel, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []model.AttendanceRecordModel
	err := db.
		Where("student_id = ?", studentID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// IsUniqueViolation recognizes a Postgres unique-constraint failure regardless
// of which driver surfaced it (lib/pq or pgx behind the GORM driver).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	var stateErr interface{ SQLState() string }
	if errors.As(err, &stateErr) {
		return stateErr.SQLState() == uniqueViolationCode
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
