package service

import (
	"context"
	"errors"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/lock"
	"finlit_backend/pkg/logger"
	"finlit_backend/pkg/monitoring"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProgressService struct {
	DB       *gorm.DB
	Progress *repository.ProgressRepository
	Badges   *repository.BadgeRepository
	UserRepo *repository.UserRepository
	Locker   lock.Locker
	Now      func() time.Time
}

func NewProgressService(
	db *gorm.DB,
	progressRepo *repository.ProgressRepository,
	badgeRepo *repository.BadgeRepository,
	userRepo *repository.UserRepository,
	locker lock.Locker,
) *ProgressService {
	return &ProgressService{
		DB:       db,
		Progress: progressRepo,
		Badges:   badgeRepo,
		UserRepo: userRepo,
		Locker:   locker,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// ChapterKey identifies one completable chapter of a user's path.
type ChapterKey struct {
	UserID          uint
	PathID          uint
	Step            int
	Chapter         int
	ExperienceLevel string
}

type CompletionResult struct {
	CurrentXP        int      `json:"current_xp"`
	NewBadges        []string `json:"new_badges"`
	AlreadyCompleted bool     `json:"already_completed"`
}

type CompletedChapter struct {
	PathID          uint   `json:"path_id"`
	Step            int    `json:"step"`
	Chapter         int    `json:"chapter"`
	ExperienceLevel string `json:"experience_level"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
}

// CompleteChapter records a chapter completion once and awards XP and badges.
// Re-submitting the same key has no effect.
func (s *ProgressService) CompleteChapter(ctx context.Context, key ChapterKey) (*CompletionResult, error) {
	key.ExperienceLevel = strings.TrimSpace(key.ExperienceLevel)
	if key.ExperienceLevel == "" {
		key.ExperienceLevel = model.DefaultExperienceLevel
	}

	unlock, err := s.Locker.Lock(ctx, lock.UserKey(key.UserID))
	if err != nil {
		return nil, fmt.Errorf("lock user %d: %w", key.UserID, err)
	}
	defer unlock()

	completion := &model.ChapterCompletion{
		UserID:          key.UserID,
		LearningPathID:  key.PathID,
		StepNumber:      key.Step,
		ChapterNumber:   key.Chapter,
		ExperienceLevel: key.ExperienceLevel,
	}

	result := &CompletionResult{NewBadges: []string{}}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progressRepo := s.Progress.WithTx(tx)
		badgeRepo := s.Badges.WithTx(tx)

		exists, err := progressRepo.CompletionExists(ctx, completion)
		if err != nil {
			return err
		}
		if exists {
			result.AlreadyCompleted = true
			return s.fillCurrentXP(ctx, progressRepo, key.UserID, result)
		}

		inserted, err := progressRepo.CreateCompletion(ctx, completion)
		if err != nil {
			return err
		}
		if !inserted {
			result.AlreadyCompleted = true
			return s.fillCurrentXP(ctx, progressRepo, key.UserID, result)
		}

		progress, err := progressRepo.GetOrCreateForUpdate(ctx, key.UserID)
		if err != nil {
			return err
		}

		now := s.Now()
		progress.XP += model.XPPerChapter
		progress.LessonsCompleted++
		progress.StreakCount = nextStreak(progress, now)
		progress.LastLessonDate = &now
		if err := progressRepo.Save(ctx, progress); err != nil {
			return err
		}
		result.CurrentXP = progress.XP

		earned, err := badgeRepo.NamesByUserID(ctx, key.UserID)
		if err != nil {
			return err
		}
		for _, name := range EvaluateBadges(progress.XP, earned) {
			awarded, err := badgeRepo.Award(ctx, key.UserID, name)
			if err != nil {
				return err
			}
			if awarded {
				result.NewBadges = append(result.NewBadges, name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyCompleted {
		monitoring.ChaptersCompleted.Inc()
		for _, name := range result.NewBadges {
			monitoring.BadgesAwarded.WithLabelValues(name).Inc()
		}
		logger.Log.Debug("Chapter completed",
			zap.Uint("user_id", key.UserID),
			zap.Uint("path_id", key.PathID),
			zap.Int("step", key.Step),
			zap.Int("chapter", key.Chapter),
			zap.Int("xp", result.CurrentXP),
			zap.Strings("new_badges", result.NewBadges),
		)
	}
	return result, nil
}

func (s *ProgressService) fillCurrentXP(ctx context.Context, repo *repository.ProgressRepository, userID uint, result *CompletionResult) error {
	progress, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	result.CurrentXP = progress.XP
	return nil
}

// nextStreak keeps the streak on the same calendar day, extends it on the
// following day and restarts it after a gap.
func nextStreak(p *model.UserProgress, now time.Time) int {
	if p.LastLessonDate == nil || p.StreakCount == 0 {
		return 1
	}
	today := truncateDay(now)
	last := truncateDay(*p.LastLessonDate)
	switch {
	case last.Equal(today):
		return p.StreakCount
	case last.AddDate(0, 0, 1).Equal(today):
		return p.StreakCount + 1
	default:
		return 1
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ProgressService) GetProgress(ctx context.Context, userID uint) (*model.UserProgress, error) {
	progress, err := s.Progress.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("progress of user %d: %w", userID, util.ErrNotFound)
		}
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) ListBadges(ctx context.Context, userID uint) ([]model.UserBadge, error) {
	return s.Badges.FindByUserID(ctx, userID)
}

func (s *ProgressService) ListCompleted(ctx context.Context, userID uint) ([]CompletedChapter, error) {
	completions, err := s.Progress.FindCompletionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]CompletedChapter, len(completions))
	for i, c := range completions {
		out[i] = CompletedChapter{
			PathID:          c.LearningPathID,
			Step:            c.StepNumber,
			Chapter:         c.ChapterNumber,
			ExperienceLevel: c.ExperienceLevel,
		}
	}
	return out, nil
}

// Leaderboard ranks users by XP; limit is clamped to [1, MaxLeaderboardSize].
func (s *ProgressService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = util.DefaultLeaderboardSize
	}
	if limit > util.MaxLeaderboardSize {
		limit = util.MaxLeaderboardSize
	}

	top, err := s.Progress.FindTopByXP(ctx, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(top))
	for i, p := range top {
		ids[i] = p.UserID
	}
	names, err := s.UserRepo.FindUsernames(ctx, ids)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, len(top))
	for i, p := range top {
		leaderboard[i] = LeaderboardEntry{
			Rank:     i + 1,
			UserID:   p.UserID,
			Username: names[p.UserID],
			XP:       p.XP,
		}
	}
	return leaderboard, nil
}
