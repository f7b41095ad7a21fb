package service

import (
	"context"
	"errors"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/logger"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

// Avatar is an uploaded profile picture.
type Avatar struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, util.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfilePicture stores the image and points the user's profile_pic at it.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID uint, avatar Avatar) (string, error) {
	if !strings.HasPrefix(avatar.ContentType, util.MimeImage) {
		return "", fmt.Errorf("%w: file must be an image", util.ErrInvalidParam)
	}
	if avatar.Size <= 0 || avatar.Size > util.MaxAvatarSize {
		return "", fmt.Errorf("%w: file must be between 1 byte and %d MB", util.ErrInvalidParam, util.MaxAvatarSize>>20)
	}

	if _, err := s.GetUser(ctx, userID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.NewString(), strings.ToLower(filepath.Ext(avatar.Filename)))
	url, err := s.Storage.Upload(ctx, key, avatar.Reader, avatar.Size, avatar.ContentType)
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	if err := s.UserRepo.UpdateProfilePic(ctx, userID, url); err != nil {
		if delErr := s.Storage.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("Failed to remove orphaned avatar", zap.String("key", key), zap.Error(delErr))
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user %d: %w", userID, util.ErrNotFound)
		}
		return "", err
	}
	return url, nil
}
