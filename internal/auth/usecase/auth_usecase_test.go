package usecase

import (
	"errors"
	"testing"
	"time"

	authdomain "planner-backend/internal/auth/domain"
	authdto "planner-backend/internal/auth/dto"
	"planner-backend/internal/auth/repository"
	"planner-backend/pkg/config"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byEmail map[string]*authdomain.User
	byID    map[string]*authdomain.User
	tokens  map[string]*authdomain.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*authdomain.User),
		byID:    make(map[string]*authdomain.User),
		tokens:  make(map[string]*authdomain.RefreshToken),
	}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return r.tokens[token], nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(r.tokens, token)
	return nil
}

type fakeDeviceRepo struct{}

func (fakeDeviceRepo) SaveToken(userID, token, deviceInfo string) error { return nil }
func (fakeDeviceRepo) GetTokensByUserID(userID string) ([]authdomain.DeviceToken, error) {
	return nil, nil
}
func (fakeDeviceRepo) DeleteToken(token string) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func newTestAuth() (AuthUsecase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthUsecase(repo, fakeDeviceRepo{}, testConfig()), repo
}

func assertCode(t *testing.T, err error, code Code) {
	t.Helper()
	var authError *AuthError
	if !errors.As(err, &authError) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authError.Code != code {
		t.Fatalf("expected code %s, got %s", code, authError.Code)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _ := newTestAuth()

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "k@example.com", Password: "secret1", Name: "K"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("tokens missing from register response")
	}

	login, err := uc.Login(&authdto.LoginRequest{Email: "k@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	user, err := uc.ValidateToken(login.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if user.Email != "k@example.com" {
		t.Errorf("unexpected user: %s", user.Email)
	}
}

func TestAuthErrorCodes(t *testing.T) {
	uc, repo := newTestAuth()
	_, _ = uc.Register(&authdto.RegisterRequest{Email: "k@example.com", Password: "secret1", Name: "K"})

	t.Run("invalid email", func(t *testing.T) {
		_, err := uc.Login(&authdto.LoginRequest{Email: "not-an-email", Password: "x"})
		assertCode(t, err, CodeInvalidEmail)
	})

	t.Run("user not found", func(t *testing.T) {
		_, err := uc.Login(&authdto.LoginRequest{Email: "missing@example.com", Password: "x"})
		assertCode(t, err, CodeUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(&authdto.LoginRequest{Email: "k@example.com", Password: "nope"})
		assertCode(t, err, CodeWrongPassword)
	})

	t.Run("email already in use", func(t *testing.T) {
		_, err := uc.Register(&authdto.RegisterRequest{Email: "k@example.com", Password: "secret1", Name: "K"})
		assertCode(t, err, CodeEmailAlreadyInUse)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := uc.Register(&authdto.RegisterRequest{Email: "new@example.com", Password: "abc", Name: "N"})
		assertCode(t, err, CodeWeakPassword)
	})

	t.Run("disabled account", func(t *testing.T) {
		repo.byEmail["k@example.com"].Disabled = true
		_, err := uc.Login(&authdto.LoginRequest{Email: "k@example.com", Password: "secret1"})
		assertCode(t, err, CodeUserDisabled)
		repo.byEmail["k@example.com"].Disabled = false
	})
}

func TestAuthErrorMessages(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidEmail, "Invalid email address"},
		{CodeUserDisabled, "This account has been disabled"},
		{CodeUserNotFound, "No account found with this email"},
		{CodeWrongPassword, "Incorrect password"},
		{CodeEmailAlreadyInUse, "An account with this email already exists"},
		{CodeWeakPassword, "Password should be at least 6 characters"},
		{CodeNetworkFailure, "Network error. Please check your connection"},
		{CodeOther, "Authentication error. Please try again"},
	}
	for _, tc := range tests {
		if got := (&AuthError{Code: tc.code}).Message(); got != tc.want {
			t.Errorf("%s: want %q, got %q", tc.code, tc.want, got)
		}
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	uc, _ := newTestAuth()
	resp, _ := uc.Register(&authdto.RegisterRequest{Email: "k@example.com", Password: "secret1", Name: "K"})

	refreshed, err := uc.RefreshToken(resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("no access token after refresh")
	}

	if err := uc.Logout(resp.RefreshToken); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := uc.RefreshToken(resp.RefreshToken); err == nil {
		t.Fatal("refresh after logout must fail")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := repository.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !repository.CheckPasswordHash("secret1", hash) {
		t.Error("correct password rejected")
	}
	if repository.CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
