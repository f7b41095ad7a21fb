package model

import "time"

const (
	// XPPerChapter is awarded once per unique chapter completion.
	XPPerChapter = 20

	DefaultExperienceLevel = "Beginner"
)

// UserProgress holds the cumulative counters of one user.
// swagger:model UserProgress
type UserProgress struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	XP               int        `gorm:"default:0;not null" json:"xp"`
	LessonsCompleted int        `gorm:"default:0;not null" json:"lessons_completed"`
	StreakCount      int        `gorm:"default:0;not null" json:"streak_count"`
	LastLessonDate   *time.Time `json:"last_lesson_date"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// ChapterCompletion is unique per (user, path, step, chapter, experience level).
// swagger:model ChapterCompletion
type ChapterCompletion struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex:idx_chapter_completion,priority:1" json:"user_id"`
	LearningPathID  uint      `gorm:"not null;uniqueIndex:idx_chapter_completion,priority:2" json:"learning_path_id"`
	StepNumber      int       `gorm:"not null;uniqueIndex:idx_chapter_completion,priority:3" json:"step_number"`
	ChapterNumber   int       `gorm:"not null;uniqueIndex:idx_chapter_completion,priority:4" json:"chapter_number"`
	ExperienceLevel string    `gorm:"size:100;not null;default:Beginner;uniqueIndex:idx_chapter_completion,priority:5" json:"experience_level"`
	CreatedAt       time.Time `json:"created_at"`
}

func (ChapterCompletion) TableName() string {
	return "user_chapter_progress"
}
