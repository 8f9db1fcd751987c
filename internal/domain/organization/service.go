package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned when an organization already exists for the
// given email, whether caught by the pre-check or the unique constraint.
var ErrEmailTaken = errors.New("organization email already registered")

// ValidationError marks input errors the HTTP layer reports as 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type Service struct {
	orgs Repository
}

func NewService(orgs Repository) *Service {
	return &Service{orgs: orgs}
}

// requiredFields is checked in order; the first missing field names the
// validation error.
var requiredFields = []struct {
	name  string
	value func(*RegisterInput) string
}{
	{"name", func(in *RegisterInput) string { return in.Name }},
	{"address", func(in *RegisterInput) string { return in.Address }},
	{"city", func(in *RegisterInput) string { return in.City }},
	{"state", func(in *RegisterInput) string { return in.State }},
	{"zipCode", func(in *RegisterInput) string { return in.ZipCode }},
	{"phone", func(in *RegisterInput) string { return in.Phone }},
	{"email", func(in *RegisterInput) string { return in.Email }},
	{"password", func(in *RegisterInput) string { return in.Password }},
}

// Register validates the input, checks for an existing organization with the
// same email, hashes the password and creates the record. The email
// pre-check races with concurrent registrations; the unique constraint on
// email catches what the pre-check misses.
func (s *Service) Register(ctx context.Context, in *RegisterInput) (*Organization, error) {
	for _, f := range requiredFields {
		if f.value(in) == "" {
			return nil, &ValidationError{Msg: fmt.Sprintf("%s is required", f.name)}
		}
	}
	if len(in.Password) < 8 {
		return nil, &ValidationError{Msg: "Password must be at least 8 characters long"}
	}

	if _, err := s.orgs.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	o := &Organization{
		Name:         in.Name,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.orgs.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
