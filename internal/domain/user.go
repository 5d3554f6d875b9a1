package domain

import "time"

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleEmployee   UserRole = "EMPLOYEE"
)

type UserStatus string

const (
	UserStatusPending    UserStatus = "PENDING"
	UserStatusActive     UserStatus = "ACTIVE"
	UserStatusRestricted UserStatus = "RESTRICTED"
)

type User struct {
	ID             int32      `json:"id"`
	CognitoID      string     `json:"cognito_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	PasswordHash   string     `json:"-"`
	Role           UserRole   `json:"role"`
	Status         UserStatus `json:"status"`
	OrganizationID *int32     `json:"organization_id,omitempty"`
	CreatedOn      time.Time  `json:"created_on"`
}
