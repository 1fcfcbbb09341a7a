package auth

import "errors"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	Role           string `json:"role"`
	MembershipType string `json:"membershipType"`
	Points         int    `json:"points"`
	TotalBookings  int    `json:"totalBookings"`
}

func (u User) Admin() bool {
	return u.Role == RoleAdmin
}

var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrEmailTaken = errors.New("email already registered")

var ErrInvalidToken = errors.New("invalid session token")

var ErrUserNotFound = errors.New("user not found")
