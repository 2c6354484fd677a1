package domain

import "time"

type UserRole string

const (
	RoleShipper   UserRole = "shipper"
	RoleCarrier   UserRole = "carrier"
	RoleForwarder UserRole = "forwarder"
	RoleAdmin     UserRole = "admin"
)

// ValidRegistrationRole reports whether a role may be chosen at sign-up.
// Admin accounts are created out of band (seed / manual promotion).
func ValidRegistrationRole(r UserRole) bool {
	switch r {
	case RoleShipper, RoleCarrier, RoleForwarder:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex" validate:"required,email"`
	Phone        string    `json:"phone" gorm:"column:phone;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Role         UserRole  `json:"role" gorm:"column:role"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active"`
	CompanyName  string    `json:"company_name,omitempty" gorm:"column:company_name"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }
