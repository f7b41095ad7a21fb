package repository

import (
	"context"
	"finlit_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) WithTx(tx *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: tx}
}

func (r *BadgeRepository) FindByUserID(ctx context.Context, userID uint) ([]model.UserBadge, error) {
	var badges []model.UserBadge
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) NamesByUserID(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	err := r.DB.WithContext(ctx).Model(&model.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_name", &names).Error
	return names, err
}

// Award inserts the badge unless the user already holds it; it reports whether it was new.
func (r *BadgeRepository) Award(ctx context.Context, userID uint, name string) (bool, error) {
	badge := &model.UserBadge{UserID: userID, BadgeName: name}
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(badge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
