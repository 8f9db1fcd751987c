package organization

import (
	"time"

	"github.com/google/uuid"
)

// Organization maps to the organizations table.
type Organization struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Address      string    `db:"address"`
	City         string    `db:"city"`
	State        string    `db:"state"`
	ZipCode      string    `db:"zip_code"`
	Phone        string    `db:"phone"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// RegisterInput is the registration request body. Every field is required.
type RegisterInput struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Summary is the organization shape returned on registration.
type Summary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (o *Organization) Summary() Summary {
	return Summary{ID: o.ID, Name: o.Name, Email: o.Email}
}
