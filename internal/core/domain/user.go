package domain

import "time"

// Role classifies a user account. The set is closed: every role entering the
// system goes through ParseRole, so handlers and middleware never see a value
// outside this enumeration.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleSales   Role = "SALES"
)

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleSales:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// CompensationType describes how an agent is paid. Not consulted by the auth
// core; carried for user management only.
type CompensationType string

const (
	CompensationSalary               CompensationType = "SALARY"
	CompensationCommission           CompensationType = "COMMISSION"
	CompensationSalaryPlusCommission CompensationType = "SALARY_PLUS_COMMISSION"
)

// ParseCompensationType converts a raw string into a CompensationType.
func ParseCompensationType(s string) (CompensationType, error) {
	switch CompensationType(s) {
	case CompensationSalary, CompensationCommission, CompensationSalaryPlusCommission:
		return CompensationType(s), nil
	}
	return "", ErrInvalidCompensation
}

// User models an account that can authenticate against the CRM.
// PasswordHash is opaque bcrypt output and is never serialized.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	FirstName    string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`

	// Compensation metadata, optional.
	CompensationType CompensationType `json:"compensation_type,omitempty" bson:"compensation_type,omitempty"`
	BaseSalary       float64          `json:"base_salary,omitempty" bson:"base_salary,omitempty"`
	CommissionRate   float64          `json:"commission_rate,omitempty" bson:"commission_rate,omitempty"`
}
