package configs

import (
	"fmt"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the configured database. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey across drivers.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBSource), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Table{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderStatusEvent{},
	)
}
