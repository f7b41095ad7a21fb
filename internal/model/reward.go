package model

import "time"

type RewardType string

const (
	RewardGift         RewardType = "gift"
	RewardBigMotivator RewardType = "big_motivator"
)

// Gift is an entry of the small reward pool.
type Gift struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	GiftName string `gorm:"size:255;uniqueIndex;not null" json:"gift_name"`
	GiftType string `gorm:"size:50;not null;default:gift" json:"gift_type"`
}

func (Gift) TableName() string {
	return "gifts"
}

// BigMotivator is an entry of the higher tier reward pool.
type BigMotivator struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MotivatorName string `gorm:"size:255;uniqueIndex;not null" json:"motivator_name"`
}

func (BigMotivator) TableName() string {
	return "big_motivators"
}

// swagger:model UserReward
type UserReward struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint       `gorm:"index:idx_user_reward_type,priority:1;not null" json:"user_id"`
	RewardType RewardType `gorm:"size:50;index:idx_user_reward_type,priority:2;not null" json:"reward_type"`
	RewardName string     `gorm:"size:255;not null" json:"reward_name"`
	AwardedAt  time.Time  `gorm:"autoCreateTime" json:"awarded_at"`
}

func (UserReward) TableName() string {
	return "user_rewards"
}
