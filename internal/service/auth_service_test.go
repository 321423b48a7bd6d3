package service_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/service"
)

type mockUserRepo struct {
	nextID  int
	byEmail map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{nextID: 1, byEmail: map[string]*model.User{}}
}

func (m *mockUserRepo) Create(u *model.User) error {
	if _, taken := m.byEmail[u.Email]; taken {
		return &pq.Error{Code: "23505"}
	}
	u.ID = m.nextID
	m.nextID++
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByEmail(email string) (*model.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, appErrors.NewUserNotFound(email)
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(id int) (*model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, appErrors.NewUserNotFound("")
}

func TestRegisterAndLogin(t *testing.T) {
	svc := service.NewAuthService(newMockUserRepo(), "test-secret")

	user, err := svc.Register("Maya@Example.COM", "s3cret-enough", "Maya's Bakery")
	if err != nil {
		t.Fatal(err)
	}
	if user.Email != "maya@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.PasswordHash == "s3cret-enough" {
		t.Error("password stored in plain text")
	}

	token, got, err := svc.Login("maya@example.com", "s3cret-enough")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != user.ID {
		t.Errorf("login user id = %d, want %d", got.ID, user.ID)
	}

	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if userID != user.ID {
		t.Errorf("token subject = %d, want %d", userID, user.ID)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := service.NewAuthService(newMockUserRepo(), "test-secret")

	if _, err := svc.Register("not-an-email", "s3cret-enough", ""); err == nil {
		t.Error("expected error for invalid email")
	}
	if _, err := svc.Register("maya@example.com", "short", ""); err == nil {
		t.Error("expected error for short password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := service.NewAuthService(newMockUserRepo(), "test-secret")

	if _, err := svc.Register("maya@example.com", "s3cret-enough", ""); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register("maya@example.com", "another-pass", "")
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := service.NewAuthService(newMockUserRepo(), "test-secret")

	if _, err := svc.Register("maya@example.com", "s3cret-enough", ""); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login("maya@example.com", "wrong-pass"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	// Unknown email collapses into the same error as a bad password.
	if _, _, err := svc.Login("nobody@example.com", "s3cret-enough"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", err)
	}
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	issuer := service.NewAuthService(newMockUserRepo(), "secret-a")
	verifier := service.NewAuthService(newMockUserRepo(), "secret-b")

	if _, err := issuer.Register("maya@example.com", "s3cret-enough", ""); err != nil {
		t.Fatal(err)
	}
	token, _, err := issuer.Login("maya@example.com", "s3cret-enough")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("token signed with another secret verified: %v", err)
	}
	if _, err := issuer.Verify("not.a.token"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("garbage token verified: %v", err)
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	svc := service.NewAuthService(newMockUserRepo(), "test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &jwt.RegisteredClaims{
		Subject: strconv.Itoa(1),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("token with alg=none verified: %v", err)
	}
}
