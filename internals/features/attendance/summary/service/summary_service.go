package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	recordModel "educontrol_backend/internals/features/attendance/records/model"
	"educontrol_backend/internals/features/attendance/summary/model"
)

// SummaryService maintains the attendance_summary cache. The only write path is
// Recompute: derive everything fresh from attendance_records and upsert, never
// edit counters in place. Re-running it against unchanged records is a no-op by
// construction, and concurrent recomputes of the same data write identical rows
// (last writer wins).
type SummaryService struct{}

func NewSummaryService() *SummaryService { return &SummaryService{} }

// Recompute rebuilds the (student, subject) rollup from the full record set.
func (s *SummaryService) Recompute(tx *gorm.DB, studentID, subjectID uuid.UUID) error {
	type countsRow struct {
		Total    int
		Attended int
	}
	var counts countsRow
	if err := tx.Model(&recordModel.AttendanceRecordModel{}).
		Select(
			"COUNT(*) AS total, COUNT(*) FILTER (WHERE status IN ?) AS attended",
			recordModel.AttendedStatuses,
		).
		Where("student_id = ? AND subject_id = ?", studentID, subjectID).
		Take(&counts).Error; err != nil {
		return err
	}

	pct := model.PercentageFor(counts.Attended, counts.Total)
	rec := model.AttendanceSummaryModel{
		StudentID:            studentID,
		SubjectID:            subjectID,
		TotalClasses:         counts.Total,
		ClassesAttended:      counts.Attended,
		AttendancePercentage: pct,
		AccessStatus:         model.StatusForPercentage(pct),
		LastUpdated:          time.Now(),
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "subject_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_classes",
			"classes_attended",
			"attendance_percentage",
			"access_status",
			"last_updated",
		}),
	}).Create(&rec).Error
}

// RecomputeAll re-derives every pair touched by a batch. Used after a successful
// marking write and safe to re-run any time as a consistency sweep.
func (s *SummaryService) RecomputeAll(tx *gorm.DB, subjectID uuid.UUID, studentIDs []uuid.UUID) error {
	for _, studentID := range studentIDs {
		if err := s.Recompute(tx, studentID, subjectID); err != nil {
			return err
		}
	}
	return nil
}
