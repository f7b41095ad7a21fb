package service

import (
	"context"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/lock"
	"finlit_backend/pkg/logger"
	"finlit_backend/pkg/monitoring"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RewardService struct {
	DB         *gorm.DB
	RewardRepo *repository.RewardRepository
	Locker     lock.Locker
	// Intn returns a value in [0, n); replaced in tests.
	Intn func(n int) int
}

func NewRewardService(db *gorm.DB, rewardRepo *repository.RewardRepository, locker lock.Locker) *RewardService {
	return &RewardService{
		DB:         db,
		RewardRepo: rewardRepo,
		Locker:     locker,
		Intn:       rand.Intn,
	}
}

type RewardCatalog struct {
	Gifts         []model.Gift         `json:"gifts"`
	BigMotivators []model.BigMotivator `json:"big_motivators"`
}

// ClaimGift draws one gift uniformly at random and records it for the user.
func (s *RewardService) ClaimGift(ctx context.Context, userID uint) (*model.UserReward, error) {
	unlock, err := s.Locker.Lock(ctx, lock.UserKey(userID))
	if err != nil {
		return nil, fmt.Errorf("lock user %d: %w", userID, err)
	}
	defer unlock()

	var award *model.UserReward
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.RewardRepo.WithTx(tx)

		total, err := repo.CountGifts(ctx)
		if err != nil {
			return err
		}
		if total == 0 {
			return util.ErrNoInventory
		}

		gift, err := repo.GiftAt(ctx, s.Intn(int(total)))
		if err != nil {
			return err
		}

		award = &model.UserReward{
			UserID:     userID,
			RewardType: model.RewardGift,
			RewardName: gift.GiftName,
		}
		return repo.CreateAward(ctx, award)
	})
	if err != nil {
		return nil, err
	}

	monitoring.RewardsClaimed.WithLabelValues(string(model.RewardGift)).Inc()
	logger.Log.Debug("Gift claimed", zap.Uint("user_id", userID), zap.String("reward", award.RewardName))
	return award, nil
}

// ClaimBigMotivator requires BigMotivatorGiftThreshold prior gift claims.
func (s *RewardService) ClaimBigMotivator(ctx context.Context, userID uint) (*model.UserReward, error) {
	unlock, err := s.Locker.Lock(ctx, lock.UserKey(userID))
	if err != nil {
		return nil, fmt.Errorf("lock user %d: %w", userID, err)
	}
	defer unlock()

	var award *model.UserReward
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.RewardRepo.WithTx(tx)

		gifts, err := repo.CountByUserAndType(ctx, userID, model.RewardGift)
		if err != nil {
			return err
		}
		if gifts < util.BigMotivatorGiftThreshold {
			return util.ErrIneligible
		}

		total, err := repo.CountBigMotivators(ctx)
		if err != nil {
			return err
		}
		if total == 0 {
			return util.ErrNoInventory
		}

		motivator, err := repo.BigMotivatorAt(ctx, s.Intn(int(total)))
		if err != nil {
			return err
		}

		award = &model.UserReward{
			UserID:     userID,
			RewardType: model.RewardBigMotivator,
			RewardName: motivator.MotivatorName,
		}
		return repo.CreateAward(ctx, award)
	})
	if err != nil {
		return nil, err
	}

	monitoring.RewardsClaimed.WithLabelValues(string(model.RewardBigMotivator)).Inc()
	logger.Log.Info("Big motivator claimed", zap.Uint("user_id", userID), zap.String("reward", award.RewardName))
	return award, nil
}

func (s *RewardService) MyRewards(ctx context.Context, userID uint) ([]model.UserReward, error) {
	return s.RewardRepo.FindAwardsByUserID(ctx, userID)
}

func (s *RewardService) Catalog(ctx context.Context) (*RewardCatalog, error) {
	gifts, err := s.RewardRepo.ListGifts(ctx)
	if err != nil {
		return nil, err
	}
	motivators, err := s.RewardRepo.ListBigMotivators(ctx)
	if err != nil {
		return nil, err
	}
	return &RewardCatalog{Gifts: gifts, BigMotivators: motivators}, nil
}
