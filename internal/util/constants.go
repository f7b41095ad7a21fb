package util

const TimeFormat = "2006-01-02 15:04:05"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeImage = "image/"
)

const (
	// BigMotivatorGiftThreshold is the number of gift claims needed before a big motivator.
	BigMotivatorGiftThreshold = 5

	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100

	MaxAvatarSize = 5 << 20
)
