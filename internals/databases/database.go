package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"educontrol_backend/internals/configs"
	branchModel "educontrol_backend/internals/features/academics/branches/model"
	enrollmentModel "educontrol_backend/internals/features/academics/enrollments/model"
	subjectModel "educontrol_backend/internals/features/academics/subjects/model"
	overrideModel "educontrol_backend/internals/features/attendance/overrides/model"
	attendanceModel "educontrol_backend/internals/features/attendance/records/model"
	summaryModel "educontrol_backend/internals/features/attendance/summary/model"
	assignmentModel "educontrol_backend/internals/features/content/assignments/model"
	resourceModel "educontrol_backend/internals/features/content/resources/model"
	userModel "educontrol_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=educontrol&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // needed for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] failed to connect DB: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateDB keeps the schema in sync at startup. The unique index on
// attendance_records(student_id, subject_id, date) lives in the model tags and is
// the sole guard against double-marking, so migration must run before serving.
func MigrateDB() {
	if err := DB.AutoMigrate(
		&userModel.ProfileModel{},
		&userModel.UserRoleModel{},
		&branchModel.BranchModel{},
		&subjectModel.SubjectModel{},
		&subjectModel.SubjectBranchModel{},
		&subjectModel.TeacherSubjectModel{},
		&enrollmentModel.EnrollmentModel{},
		&attendanceModel.AttendanceRecordModel{},
		&summaryModel.AttendanceSummaryModel{},
		&overrideModel.AccessOverrideModel{},
		&resourceModel.ResourceModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.SubmissionModel{},
	); err != nil {
		log.Fatalf("[ERROR] auto-migrate failed: %v", err)
	}
	log.Println("[INFO] schema migrated.")
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
