package models

import "time"

// RoleType is the caller role established by the identity collaborator.
type RoleType string

const (
	RoleCandidate RoleType = "candidate"
	RoleAdmin     RoleType = "admin"
)

// User defines the user model based on the 'users' table. This service only
// reads users: accounts are created and authenticated by the external
// identity collaborator. The email and full name are needed to compose
// status notifications.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"fullName" db:"full_name"`
	Role      RoleType  `json:"role" db:"role" example:"candidate"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
