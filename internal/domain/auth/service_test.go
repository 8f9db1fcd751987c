package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type mockRepo struct {
	users    map[string]*User
	failWith error
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: make(map[string]*User)}
}

func (m *mockRepo) Create(ctx context.Context, u *User) error {
	if m.failWith != nil {
		return m.failWith
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	m.users[u.Username] = u
	return nil
}

func (m *mockRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	u, ok := m.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewTokenIssuer("test-secret", time.Hour))
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	u, err := svc.Register(context.Background(), &RegisterInput{
		Username:  "ghopper",
		Password:  "correct horse",
		FirstName: "Grace",
		LastName:  "Hopper",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.PasswordHash == "correct horse" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
}

func TestRegister_RequiresUsernameAndPassword(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.Register(context.Background(), &RegisterInput{Username: "ghopper"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), &RegisterInput{
		Username: "ghopper",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, token, err := svc.Login(context.Background(), &LoginInput{
		Username: "ghopper",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := NewTokenIssuer("test-secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims["sub"] != u.ID.String() {
		t.Errorf("expected sub %s, got %v", u.ID, claims["sub"])
	}
	if claims["username"] != "ghopper" {
		t.Errorf("expected username claim, got %v", claims["username"])
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), &RegisterInput{
		Username: "ghopper",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), &LoginInput{
		Username: "ghopper",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, _, err := svc.Login(context.Background(), &LoginInput{
		Username: "nobody",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	token, err := issuer.Issue(&User{ID: uuid.New(), Username: "ghopper"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Verify(token); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("test-secret", time.Hour).Issue(&User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokenIssuer("other-secret", time.Hour).Verify(token); err == nil {
		t.Error("expected wrong-secret verification to fail")
	}
}
