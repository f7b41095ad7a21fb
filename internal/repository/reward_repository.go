package repository

import (
	"context"
	"finlit_backend/internal/model"

	"gorm.io/gorm"
)

type RewardRepository struct {
	DB *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: db}
}

func (r *RewardRepository) WithTx(tx *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: tx}
}

func (r *RewardRepository) CountGifts(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Gift{}).Count(&count).Error
	return count, err
}

// GiftAt returns the gift at position offset in id order.
func (r *RewardRepository) GiftAt(ctx context.Context, offset int) (*model.Gift, error) {
	var g model.Gift
	err := r.DB.WithContext(ctx).Order("id asc").Offset(offset).Limit(1).Take(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *RewardRepository) ListGifts(ctx context.Context) ([]model.Gift, error) {
	var gs []model.Gift
	err := r.DB.WithContext(ctx).Order("id asc").Find(&gs).Error
	return gs, err
}

func (r *RewardRepository) CountBigMotivators(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.BigMotivator{}).Count(&count).Error
	return count, err
}

func (r *RewardRepository) BigMotivatorAt(ctx context.Context, offset int) (*model.BigMotivator, error) {
	var m model.BigMotivator
	err := r.DB.WithContext(ctx).Order("id asc").Offset(offset).Limit(1).Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *RewardRepository) ListBigMotivators(ctx context.Context) ([]model.BigMotivator, error) {
	var ms []model.BigMotivator
	err := r.DB.WithContext(ctx).Order("id asc").Find(&ms).Error
	return ms, err
}

func (r *RewardRepository) CountByUserAndType(ctx context.Context, userID uint, rewardType model.RewardType) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.UserReward{}).
		Where("user_id = ? AND reward_type = ?", userID, rewardType).
		Count(&count).Error
	return count, err
}

func (r *RewardRepository) CreateAward(ctx context.Context, award *model.UserReward) error {
	return r.DB.WithContext(ctx).Create(award).Error
}

func (r *RewardRepository) FindAwardsByUserID(ctx context.Context, userID uint) ([]model.UserReward, error) {
	var rs []model.UserReward
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&rs).Error
	return rs, err
}
