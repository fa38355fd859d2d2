package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Back-office administrator - full access
	RoleManager  Role = "manager"  // Can approve leave, edit attendance, run payroll
	RoleEmployee Role = "employee" // Regular employee
)

// ParseRole maps a claim string onto a known role. Unknown values
// degrade to the least privileged role rather than failing open.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleManager:
		return Role(s)
	default:
		return RoleEmployee
	}
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is a back-office administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanApprove checks if user can approve leave requests
func (u *User) CanApprove() bool {
	return u.IsManager()
}
