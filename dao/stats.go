package dao

import (
	"context"

	"SnackShop/models"
	"SnackShop/types"

	"gorm.io/gorm"
)

type Stats struct {
	Db *gorm.DB
}

func NewStats(db *gorm.DB) *Stats {
	return &Stats{Db: db}
}

// Dashboard 后台首页聚合，全部现查
func (s *Stats) Dashboard(ctx context.Context) (*types.Dashboard, error) {
	db := s.Db.WithContext(ctx)
	d := &types.Dashboard{}

	if err := db.Model(&models.Order{}).Count(&d.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&d.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&d.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).Where("is_active = ?", true).Count(&d.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Users{}).Where("role = ?", models.RoleCustomer).Count(&d.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Order("created_at DESC").Limit(10).Find(&d.RecentOrders).Error; err != nil {
		return nil, err
	}

	return d, nil
}
