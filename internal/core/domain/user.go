package domain

import (
	"errors"
	"time"
)

// Role is the closed set of staff roles in the billing system.
const (
	RoleSuperAdmin     = "super_admin"
	RoleStationManager = "station_manager"
	RoleSalesExecutive = "sales_executive"
	RoleAccountant     = "accountant"
	RoleViewer         = "viewer"
)

// User status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the five staff roles.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleStationManager, RoleSalesExecutive, RoleAccountant, RoleViewer:
		return true
	}
	return false
}

// CanRegisterUsers reports whether a role is allowed to create staff accounts.
func CanRegisterUsers(role string) bool {
	return role == RoleSuperAdmin || role == RoleStationManager
}

// User models a staff member of the radio network. StationCodes scopes the
// account to one or more broadcast stations (e.g. "FR-KAN").
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	StationCodes []string  `json:"station_codes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
