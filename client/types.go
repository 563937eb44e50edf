package client

import "time"

// User is the staff account record as the API returns it.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	StationCodes []string  `json:"station_codes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterPayload is the body sent to POST /auth/register.
type RegisterPayload struct {
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	FullName     string   `json:"full_name"`
	Phone        string   `json:"phone"`
	Role         string   `json:"role"`
	StationCodes []string `json:"station_codes"`
	Status       string   `json:"status,omitempty"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CanRegisterUsers reports whether a role may create new staff accounts.
func CanRegisterUsers(role string) bool {
	return role == "super_admin" || role == "station_manager"
}
