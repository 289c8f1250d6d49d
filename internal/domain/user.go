package domain

import "time"

type UserRole string

const (
	RoleClient  UserRole = "client"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	Email        string    `json:"email" gorm:"size:254;not null;uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name,omitempty" gorm:"size:150"`
	LastName     string    `json:"last_name,omitempty" gorm:"size:150"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	Role         UserRole  `json:"role" gorm:"size:10;not null;default:client"`
	Department   string    `json:"department,omitempty" gorm:"size:100"`
	Position     string    `json:"position,omitempty" gorm:"size:100"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsManager reports staff access; admins count as managers.
func (r UserRole) IsManager() bool {
	return r == RoleManager || r == RoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleClient, RoleManager, RoleAdmin:
		return true
	}
	return false
}
