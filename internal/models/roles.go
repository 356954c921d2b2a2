package models

// Role constants. The set is closed: every user carries exactly one role.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleCoach   = "COACH"
	RolePlayer  = "PLAYER"
	RoleUser    = "USER"
)

// AllRoles returns a slice of all defined roles.
func AllRoles() []string {
	return []string{
		RoleAdmin,
		RoleManager,
		RoleCoach,
		RolePlayer,
		RoleUser,
	}
}

// IsValidRole reports whether role belongs to the closed enumeration.
func IsValidRole(role string) bool {
	for _, r := range AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}
