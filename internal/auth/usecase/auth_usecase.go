package usecase

import (
	"net/mail"
	"time"

	authdomain "planner-backend/internal/auth/domain"
	authdto "planner-backend/internal/auth/dto"
	"planner-backend/internal/auth/repository"
	"planner-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const minPasswordLength = 6

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)
	RegisterDevice(userID, token, deviceInfo string) error
	UnregisterDevice(token string) error
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceTokenRepository
	config     *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, deviceRepo repository.DeviceTokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		config:     cfg,
	}
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, authErr(CodeInvalidEmail)
	}

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		return nil, authErr(CodeUserNotFound)
	}
	if user.Disabled {
		return nil, authErr(CodeUserDisabled)
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, authErr(CodeWrongPassword)
	}

	return u.generateTokens(user)
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, authErr(CodeInvalidEmail)
	}
	if len(req.Password) < minPasswordLength {
		return nil, authErr(CodeWeakPassword)
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, storeErr(err)
	}
	if existing != nil {
		return nil, authErr(CodeEmailAlreadyInUse)
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, &AuthError{Code: CodeOther, Err: err}
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, storeErr(err)
	}

	return u.generateTokens(user)
}

func (u *authUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, authErr(CodeOther)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authErr(CodeOther)
	}

	storedToken, err := u.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, storeErr(err)
	}
	if storedToken == nil || storedToken.ExpiresAt.Before(time.Now()) {
		return nil, authErr(CodeOther)
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, authErr(CodeOther)
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		return nil, authErr(CodeUserNotFound)
	}
	if user.Disabled {
		return nil, authErr(CodeUserDisabled)
	}

	return u.generateTokens(user)
}

func (u *authUsecase) Logout(refreshToken string) error {
	return u.userRepo.DeleteRefreshToken(refreshToken)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, authErr(CodeOther)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authErr(CodeOther)
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, authErr(CodeOther)
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		return nil, authErr(CodeUserNotFound)
	}
	if user.Disabled {
		return nil, authErr(CodeUserDisabled)
	}

	return user, nil
}

func (u *authUsecase) RegisterDevice(userID, token, deviceInfo string) error {
	return u.deviceRepo.SaveToken(userID, token, deviceInfo)
}

func (u *authUsecase) UnregisterDevice(token string) error {
	return u.deviceRepo.DeleteToken(token)
}

func (u *authUsecase) generateTokens(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, &AuthError{Code: CodeOther, Err: err}
	}

	refreshToken, err := u.generateRefreshToken(user)
	if err != nil {
		return nil, &AuthError{Code: CodeOther, Err: err}
	}

	refreshTokenEntity := &authdomain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(u.config.JWTRefreshExpiry),
	}
	if err := u.userRepo.SaveRefreshToken(refreshTokenEntity); err != nil {
		return nil, storeErr(err)
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) generateRefreshToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"token_id": uuid.New().String(),
		"exp":      time.Now().Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
