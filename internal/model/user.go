package model

// swagger:model User
type User struct {
	BaseModel
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	ProfilePic   string `gorm:"type:text" json:"profile_pic"`
}

func (User) TableName() string {
	return "users"
}
