package domain

import "time"

// Role enumerates the closed set of business roles.
type Role string

const (
	RoleOwner      Role = "Owner"
	RoleEmployee   Role = "Employee"
	RoleDelivery   Role = "Delivery"
	RoleAccountant Role = "Accountant"
)

// ValidRole reports whether the role is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleEmployee, RoleDelivery, RoleAccountant:
		return true
	}
	return false
}

// User is the domain model for business accounts.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
