package service

import (
	"errors"

	"github.com/Raam751/ClassPulse/internal/config"
	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Email    *EmailService
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, email *EmailService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Email:    email,
		Config:   cfg,
	}
}

type AuthResult struct {
	Token string         `json:"token"`
	Email string         `json:"email"`
	Name  string         `json:"name"`
	Role  model.UserRole `json:"role"`
}

// Register creates the account and hands out a token. The email unique index
// turns a duplicate registration into Conflict. The welcome mail is
// fire-and-forget.
func (s *AuthService) Register(name, email, password string, role model.UserRole) (*AuthResult, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.NewConflict("user already exists with email: " + email)
		}
		return nil, err
	}

	if s.Email != nil {
		go s.Email.SendWelcome(user)
	}

	return s.issueToken(user)
}

// Login deliberately reports the same error for a missing user and a wrong
// password.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *model.User) (*AuthResult, error) {
	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}
