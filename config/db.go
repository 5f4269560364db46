package config

import (
	"context"
	"fmt"
	"luxefurnish/domain"
	"luxefurnish/utils"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func (d Database) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

func BootDB(cfg *Config) (*gorm.DB, error) {
	var gormLogger logger.Interface
	if cfg.IsDevelopment() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.URL()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: connect database: %v", domain.ErrUpstream, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedAdmin(context.Background(), db, cfg.Admin, cfg.BcryptCost); err != nil {
		return nil, err
	}

	log.Info().Msg("Connected to " + utils.ColorText("Database", utils.Green) + " successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate database schemas: %w", err)
	}
	return nil
}

// SeedAdmin creates the first admin account when none exists and ADMIN_EMAIL
// and ADMIN_PASSWORD are set.
func SeedAdmin(ctx context.Context, db *gorm.DB, admin Admin, cost int) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" || admin.Password == "" {
		log.Warn().Msg("Skipping admin seeding, missing ADMIN_EMAIL or ADMIN_PASSWORD in env")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), cost)
	if err != nil {
		return err
	}
	user := domain.User{
		Name:     admin.Name,
		Email:    email,
		Password: string(hashed),
		Role:     domain.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	log.Info().Str("email", email).Msg("Seeded admin user")
	return nil
}
