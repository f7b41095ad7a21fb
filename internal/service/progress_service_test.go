package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/testutil"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressService(t *testing.T) (*ProgressService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewProgressService(
		db,
		repository.NewProgressRepository(db),
		repository.NewBadgeRepository(db),
		repository.NewUserRepository(db),
		lock.NewLocalLocker(),
	)
	return svc, db
}

func TestCompleteChapterAwardsXPOnce(t *testing.T) {
	svc, db := newProgressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")

	key := ChapterKey{UserID: user.ID, PathID: 1, Step: 1, Chapter: 1}

	first, err := svc.CompleteChapter(ctx, key)
	require.NoError(t, err)
	assert.False(t, first.AlreadyCompleted)
	assert.Equal(t, 20, first.CurrentXP)
	assert.Empty(t, first.NewBadges)

	second, err := svc.CompleteChapter(ctx, key)
	require.NoError(t, err)
	assert.True(t, second.AlreadyCompleted)
	assert.Equal(t, 20, second.CurrentXP)

	progress, err := svc.GetProgress(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, progress.XP)
	assert.Equal(t, 1, progress.LessonsCompleted)

	completed, err := svc.ListCompleted(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, CompletedChapter{PathID: 1, Step: 1, Chapter: 1, ExperienceLevel: "Beginner"}, completed[0])
}

func TestCompleteChapterExperienceLevelIsPartOfKey(t *testing.T) {
	svc, db := newProgressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")

	_, err := svc.CompleteChapter(ctx, ChapterKey{UserID: user.ID, PathID: 1, Step: 1, Chapter: 1, ExperienceLevel: "Beginner"})
	require.NoError(t, err)

	res, err := svc.CompleteChapter(ctx, ChapterKey{UserID: user.ID, PathID: 1, Step: 1, Chapter: 1, ExperienceLevel: "Advanced"})
	require.NoError(t, err)
	assert.False(t, res.AlreadyCompleted)
	assert.Equal(t, 40, res.CurrentXP)

	// blank level means Beginner
	res, err = svc.CompleteChapter(ctx, ChapterKey{UserID: user.ID, PathID: 1, Step: 1, Chapter: 1, ExperienceLevel: "  "})
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
}

func TestCompleteChapterBadgeThresholds(t *testing.T) {
	svc, db := newProgressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")

	// No badges recorded yet; one completion lands exactly on 250.
	require.NoError(t, db.Create(&model.UserProgress{UserID: user.ID, XP: 230}).Error)

	res, err := svc.CompleteChapter(ctx, ChapterKey{UserID: user.ID, PathID: 1, Step: 1, Chapter: 1})
	require.NoError(t, err)
	assert.Equal(t, 250, res.CurrentXP)
	assert.Equal(t, []string{"Beginner Badge 🥉", "Intermediate Badge 🥈"}, res.NewBadges)

	res, err = svc.CompleteChapter(ctx, ChapterKey{UserID: user.ID, PathID: 1, Step: 1, Chapter: 2})
	require.NoError(t, err)
	assert.Equal(t, 270, res.CurrentXP)
	assert.Empty(t, res.NewBadges)

	badges, err := svc.ListBadges(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, badges, 2)
}

func TestCompleteChapterRollsBackOnBadgeFailure(t *testing.T) {
	svc, db := newProgressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")

	require.NoError(t, db.Create(&model.UserProgress{UserID: user.ID, XP: 80}).Error)

	errBadgeStore := errors.New("badge store unavailable")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_user_badges", func(tx *gorm.DB) {
		if tx.Statement.Table == "user_badges" {
			_ = tx.AddError(errBadgeStore)
		}
	}))

	// 80 + 20 reaches the first badge, whose insert fails.
	_, err := svc.CompleteChapter(ctx, ChapterKey{UserID: user.ID, PathID: 1, Step: 1, Chapter: 1})
	require.ErrorIs(t, err, errBadgeStore)

	progress, err := svc.GetProgress(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, progress.XP)
	assert.Equal(t, 0, progress.LessonsCompleted)

	var completions, badges int64
	require.NoError(t, db.Model(&model.ChapterCompletion{}).Where("user_id = ?", user.ID).Count(&completions).Error)
	require.NoError(t, db.Model(&model.UserBadge{}).Where("user_id = ?", user.ID).Count(&badges).Error)
	assert.Zero(t, completions)
	assert.Zero(t, badges)
}

func TestCompleteChapterReachesBadgesByIncrements(t *testing.T) {
	svc, db := newProgressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")

	var awarded []string
	for chapter := 1; chapter <= 5; chapter++ {
		res, err := svc.CompleteChapter(ctx, ChapterKey{UserID: user.ID, PathID: 3, Step: 1, Chapter: chapter})
		require.NoError(t, err)
		assert.Equal(t, chapter*20, res.CurrentXP)
		awarded = append(awarded, res.NewBadges...)
	}
	assert.Equal(t, []string{"Beginner Badge 🥉"}, awarded)
}

func TestCompleteChapterConcurrentSubmissions(t *testing.T) {
	svc, db := newProgressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")

	key := ChapterKey{UserID: user.ID, PathID: 1, Step: 2, Chapter: 3}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		fresh int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.CompleteChapter(ctx, key)
			if !assert.NoError(t, err) {
				return
			}
			if !res.AlreadyCompleted {
				mu.Lock()
				fresh++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fresh)
	progress, err := svc.GetProgress(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, progress.XP)
}

func TestCompleteChapterStreak(t *testing.T) {
	svc, db := newProgressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	complete := func(chapter int, at time.Time) *model.UserProgress {
		svc.Now = func() time.Time { return at }
		_, err := svc.CompleteChapter(ctx, ChapterKey{UserID: user.ID, PathID: 1, Step: 1, Chapter: chapter})
		require.NoError(t, err)
		p, err := svc.GetProgress(ctx, user.ID)
		require.NoError(t, err)
		return p
	}

	assert.Equal(t, 1, complete(1, day).StreakCount)
	assert.Equal(t, 1, complete(2, day.Add(3*time.Hour)).StreakCount)
	assert.Equal(t, 2, complete(3, day.AddDate(0, 0, 1)).StreakCount)
	assert.Equal(t, 3, complete(4, day.AddDate(0, 0, 2).Add(14*time.Hour)).StreakCount)
	p := complete(5, day.AddDate(0, 0, 5))
	assert.Equal(t, 1, p.StreakCount)
	assert.Equal(t, 5, p.LessonsCompleted)
}

func TestGetProgressNotFound(t *testing.T) {
	svc, _ := newProgressService(t)

	_, err := svc.GetProgress(context.Background(), 99)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestLeaderboard(t *testing.T) {
	svc, db := newProgressService(t)
	ctx := context.Background()
	alice := testutil.SeedUser(t, ctx, db, "a@example.com", "alice")
	bob := testutil.SeedUser(t, ctx, db, "b@example.com", "bob")

	for chapter := 1; chapter <= 3; chapter++ {
		_, err := svc.CompleteChapter(ctx, ChapterKey{UserID: bob.ID, PathID: 1, Step: 1, Chapter: chapter})
		require.NoError(t, err)
	}
	_, err := svc.CompleteChapter(ctx, ChapterKey{UserID: alice.ID, PathID: 1, Step: 1, Chapter: 1})
	require.NoError(t, err)

	board, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, LeaderboardEntry{Rank: 1, UserID: bob.ID, Username: "bob", XP: 60}, board[0])
	assert.Equal(t, LeaderboardEntry{Rank: 2, UserID: alice.ID, Username: "alice", XP: 20}, board[1])

	board, err = svc.Leaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, board, 1)
}

func TestNextStreakWithoutHistory(t *testing.T) {
	assert.Equal(t, 1, nextStreak(&model.UserProgress{}, time.Now()))
}
