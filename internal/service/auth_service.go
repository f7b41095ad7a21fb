package service

import (
	"context"
	"errors"
	"finlit_backend/internal/config"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
	// Cost is the bcrypt work factor.
	Cost int
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
		Cost:     bcrypt.DefaultCost,
	}
}

type LoginResult struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

// Signup creates a user when neither the email nor the username is taken.
func (s *AuthService) Signup(ctx context.Context, email, username, password string) (uint, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	taken, err := s.UserRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, util.ErrConflict
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return 0, util.ErrConflict
		}
		return 0, err
	}
	return user.ID, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.ErrUnauthorized
	}

	token, err := util.GenerateJWT(user.ID, user.Username, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{UserID: user.ID, Token: token}, nil
}
