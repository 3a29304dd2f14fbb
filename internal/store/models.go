package store

import "time"

// Role is a user's function within one school.
type Role string

const (
	RoleAdmin             Role = "ADMIN"
	RoleSchoolManager     Role = "SCHOOL_MANAGER"
	RoleSubjectSupervisor Role = "SUBJECT_SUPERVISOR"
	RoleSubjectTeacher    Role = "SUBJECT_TEACHER"
	RoleStudent           Role = "STUDENT"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSchoolManager, RoleSubjectSupervisor, RoleSubjectTeacher, RoleStudent:
		return true
	}
	return false
}

// User is an account. A user belongs to schools only through
// memberships; the account itself carries no role.
type User struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Email        string  `gorm:"uniqueIndex;not null"`
	Name         *string `gorm:""`
	PasswordHash string  `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// School groups users under a join code.
type School struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"not null"`
	Code        string `gorm:"uniqueIndex;not null"`
	CreatedByID string `gorm:"size:36"`
	CreatedAt   time.Time
}

// SchoolMembership ties a user to a school with a role. Grade and
// class apply to students; subject applies to teachers and
// supervisors.
type SchoolMembership struct {
	ID         string `gorm:"primaryKey;size:36"`
	UserID     string `gorm:"size:36;not null;uniqueIndex:idx_member_user_school"`
	SchoolID   string `gorm:"size:36;not null;uniqueIndex:idx_member_user_school"`
	Role       Role   `gorm:"not null"`
	GradeLevel *int
	ClassName  *string
	Subject    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User   User   `gorm:"foreignKey:UserID"`
	School School `gorm:"foreignKey:SchoolID"`
}
