package model

import (
	"time"

	"gorm.io/datatypes"
)

// LearningPath is a user's snapshot of one catalog topic, taken at generation time.
// swagger:model LearningPath
type LearningPath struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Topic     string         `gorm:"size:255;not null" json:"topic"`
	PathName  string         `gorm:"size:255" json:"path_name"`
	PathJSON  datatypes.JSON `json:"path_json" swaggertype:"array,object"`
	CreatedAt time.Time      `json:"created_at"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}
