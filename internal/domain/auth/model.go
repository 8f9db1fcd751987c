package auth

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the users table. PasswordHash never leaves this package.
type User struct {
	ID               uuid.UUID `db:"id"`
	Username         string    `db:"username"`
	PasswordHash     string    `db:"password_hash"`
	Email            *string   `db:"email"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	Suffix           *string   `db:"suffix"`
	Discipline       *string   `db:"discipline"`
	AgencyEmployeeID *string   `db:"agency_employee_id"`
	Phone1           *string   `db:"phone1"`
	Phone2           *string   `db:"phone2"`
	EmployeeType     *string   `db:"employee_type"`
	Permissions      []string  `db:"permissions"`
	CreatedAt        time.Time `db:"created_at"`
}

// Profile is the user shape returned over the wire. It carries no
// credential material.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Discipline   *string   `json:"discipline"`
	EmployeeType *string   `json:"employeeType"`
	Permissions  []string  `json:"permissions"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Discipline:   u.Discipline,
		EmployeeType: u.EmployeeType,
		Permissions:  u.Permissions,
	}
}

// RegisterInput is the registration request body.
type RegisterInput struct {
	Username         string  `json:"username"`
	Password         string  `json:"password"`
	Email            *string `json:"email"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Suffix           *string `json:"suffix"`
	Discipline       *string `json:"discipline"`
	AgencyEmployeeID *string `json:"agencyEmployeeId"`
	Phone1           *string `json:"phone1"`
	Phone2           *string `json:"phone2"`
	EmployeeType     *string `json:"employeeType"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
