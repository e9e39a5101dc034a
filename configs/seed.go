package configs

import (
	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the platform superadmin on first boot. Skipped when
// the env vars are absent or the user already exists.
func SeedSuperAdmin(db *gorm.DB) error {
	username := getEnv("SUPERADMIN_USERNAME", "")
	password := getEnv("SUPERADMIN_PASSWORD", "")
	if username == "" || password == "" {
		log.Warn().Msg("skip seeding superadmin: missing SUPERADMIN_USERNAME/SUPERADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Str("username", username).Msg("superadmin already exists")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	super := entity.User{
		Username: username,
		Password: hash,
		Name:     getEnv("SUPERADMIN_NAME", "Super Admin"),
		Role:     entity.RoleSuperAdmin,
		IsActive: true,
	}
	return db.Create(&super).Error
}
