package constants

import "fmt"

const (
	RoleSuperAdmin = "super_admin"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
)

// Role error message templates
const (
	ErrOnlyStaffCanAccess  = "Only teachers or super admins may access %s."
	ErrOnlyAdminsCanAccess = "Only super admins may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleTeacher,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleSuperAdmin,
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleSuperAdmin,
	}
)

// IsStaff is the single capability check for the attendance gate bypass:
// teachers and super admins are never locked out of gated content.
func IsStaff(role string) bool {
	return role == RoleSuperAdmin || role == RoleTeacher
}
