package repository

import (
	"context"
	"finlit_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// WithTx binds the repository to a running transaction.
func (r *ProgressRepository) WithTx(tx *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: tx}
}

func (r *ProgressRepository) CompletionExists(ctx context.Context, c *model.ChapterCompletion) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.ChapterCompletion{}).
		Where("user_id = ? AND learning_path_id = ? AND step_number = ? AND chapter_number = ? AND experience_level = ?",
			c.UserID, c.LearningPathID, c.StepNumber, c.ChapterNumber, c.ExperienceLevel).
		Count(&count).Error
	return count > 0, err
}

// CreateCompletion inserts c unless the same tuple exists; it reports whether a row was written.
func (r *ProgressRepository) CreateCompletion(ctx context.Context, c *model.ChapterCompletion) (bool, error) {
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(c)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ProgressRepository) FindCompletionsByUserID(ctx context.Context, userID uint) ([]model.ChapterCompletion, error) {
	var cs []model.ChapterCompletion
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&cs).Error
	return cs, err
}

func (r *ProgressRepository) FindByUserID(ctx context.Context, userID uint) (*model.UserProgress, error) {
	var p model.UserProgress
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreateForUpdate returns the user's progress row, creating it at zero XP
// first if needed, and locks it for the rest of the transaction.
func (r *ProgressRepository) GetOrCreateForUpdate(ctx context.Context, userID uint) (*model.UserProgress, error) {
	db := r.DB.WithContext(ctx)
	seed := model.UserProgress{UserID: userID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return nil, err
	}

	var p model.UserProgress
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) Save(ctx context.Context, p *model.UserProgress) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *ProgressRepository) FindTopByXP(ctx context.Context, limit int) ([]model.UserProgress, error) {
	var ps []model.UserProgress
	err := r.DB.WithContext(ctx).Order("xp DESC").Order("user_id ASC").Limit(limit).Find(&ps).Error
	return ps, err
}
