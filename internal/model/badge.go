package model

import "time"

// swagger:model UserBadge
type UserBadge struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_badge,priority:1" json:"user_id"`
	BadgeName string    `gorm:"size:100;not null;uniqueIndex:idx_user_badge,priority:2" json:"badge_name"`
	EarnedAt  time.Time `gorm:"autoCreateTime" json:"earned_at"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
