package entity

// Role IDs follow the platform convention baked into the statistics
// queries: Admin=1, Teacher=2, Student=3.
const (
	RoleAdmin   uint = 1
	RoleTeacher uint = 2
	RoleStudent uint = 3
)

// Role is a user role, referenced (not owned) by User.
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
}

// RoleName resolves a role ID to its conventional name, defaulting to
// Student for unknown IDs.
func RoleName(roleID uint) string {
	switch roleID {
	case RoleAdmin:
		return "Admin"
	case RoleTeacher:
		return "Teacher"
	default:
		return "Student"
	}
}
