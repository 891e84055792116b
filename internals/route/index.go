package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educontrol_backend/internals/constants"
	branchRoute "educontrol_backend/internals/features/academics/branches/route"
	enrollmentRoute "educontrol_backend/internals/features/academics/enrollments/route"
	subjectRoute "educontrol_backend/internals/features/academics/subjects/route"
	accessRoute "educontrol_backend/internals/features/attendance/access/route"
	overrideRoute "educontrol_backend/internals/features/attendance/overrides/route"
	attendanceRoute "educontrol_backend/internals/features/attendance/records/route"
	assignmentRoute "educontrol_backend/internals/features/content/assignments/route"
	resourceRoute "educontrol_backend/internals/features/content/resources/route"
	userRoute "educontrol_backend/internals/features/users/route"
	authMiddleware "educontrol_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== STAFF =====================
	// Marking, overrides and CRUD: teachers and super admins only.
	log.Println("[INFO] Setting up staff routes...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("administration"), constants.StaffRoles...),
	)
	branchRoute.BranchAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	overrideRoute.OverrideAdminRoutes(admin, db)
	resourceRoute.ResourceAdminRoutes(admin, db)
	assignmentRoute.AssignmentAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)

	// ===================== AUTHENTICATED USERS =====================
	log.Println("[INFO] Setting up user routes...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	subjectRoute.SubjectUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
	accessRoute.AccessUserRoutes(user, db)
	resourceRoute.ResourceUserRoutes(user, db)
	assignmentRoute.AssignmentUserRoutes(user, db)
}
