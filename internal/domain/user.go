package domain

import "time"

// Role determines what a user may do; it never implies ownership of data.
type Role string

const (
	RoleMember  Role = "Member"
	RoleManager Role = "Manager"
	RoleAdmin   Role = "Admin"
)

// User is a student account, provisioned on first successful login with an
// institutional email address.
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}
