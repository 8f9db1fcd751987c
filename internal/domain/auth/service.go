package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords,
// so a caller cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError marks input errors the HTTP layer reports as 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type Service struct {
	users  Repository
	tokens *TokenIssuer
}

func NewService(users Repository, tokens *TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register hashes the password and creates the account. The plaintext
// password is not retained.
func (s *Service) Register(ctx context.Context, in *RegisterInput) (*User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, &ValidationError{Msg: "username and password are required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Username:         in.Username,
		PasswordHash:     string(hash),
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Suffix:           in.Suffix,
		Discipline:       in.Discipline,
		AgencyEmployeeID: in.AgencyEmployeeID,
		Phone1:           in.Phone1,
		Phone2:           in.Phone2,
		EmployeeType:     in.EmployeeType,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks the credentials and returns the user with a signed session
// token. Unknown usernames and bad passwords are indistinguishable to the
// caller.
func (s *Service) Login(ctx context.Context, in *LoginInput) (*User, string, error) {
	u, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
