package database

import (
	"finlit_backend/internal/config"
	"finlit_backend/internal/model"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// pure-Go SQLite driver, registered as "sqlite"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var DefaultGifts = []string{
	"Savings Sticker Pack",
	"Budget Boss Wallpaper",
	"Coffee Coupon",
	"Extra Quiz Hint",
	"Streak Freeze",
	"Money Mindset E-book",
}

var DefaultBigMotivators = []string{
	"1-on-1 Session with a Financial Coach",
	"Premium Budgeting Template Bundle",
	"Investing 101 Masterclass Pass",
}

func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: cfg.Path}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// InitDB opens the connection pool; it does not migrate.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.LogSQL {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns / 2)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("Database connection established")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.LearningPath{},
		&model.UserProgress{},
		&model.ChapterCompletion{},
		&model.UserBadge{},
		&model.Gift{},
		&model.BigMotivator{},
		&model.UserReward{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}

// Seed fills the reward pools when they are empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Gift{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		gifts := make([]model.Gift, 0, len(DefaultGifts))
		for _, name := range DefaultGifts {
			gifts = append(gifts, model.Gift{GiftName: name, GiftType: string(model.RewardGift)})
		}
		if err := db.Create(&gifts).Error; err != nil {
			return err
		}
	}

	var mCount int64
	if err := db.Model(&model.BigMotivator{}).Count(&mCount).Error; err != nil {
		return err
	}
	if mCount == 0 {
		motivators := make([]model.BigMotivator, 0, len(DefaultBigMotivators))
		for _, name := range DefaultBigMotivators {
			motivators = append(motivators, model.BigMotivator{MotivatorName: name})
		}
		if err := db.Create(&motivators).Error; err != nil {
			return err
		}
	}
	return nil
}
