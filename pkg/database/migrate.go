package database

import (
	"SnackShop/models"
	"SnackShop/pkg/log"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate 启动时补齐表结构，add-column / create-table / create-index 都是幂等的
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Users{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.WishlistItem{},
		&models.Testimonial{},
	)
	if err != nil {
		log.L.Error("auto migrate failed", zap.Error(err))
		return err
	}
	log.L.Info("db schema ok")
	return nil
}
