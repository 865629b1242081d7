package dao

import (
	"context"

	"SnackShop/models"
	"SnackShop/types"

	"gorm.io/gorm"
)

type Review struct {
	Repo[models.Review]
}

func NewReview(db *gorm.DB) *Review {
	return &Review{
		Repo: NewRepo[models.Review](db),
	}
}

// Exists 一个用户对一个商品终身只能评一次
func (r *Review) Exists(ctx context.Context, productID, userID int) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.Review{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *Review) ListByProduct(ctx context.Context, productID, page, limit int) ([]types.ReviewView, int64, error) {
	offset := (page - 1) * limit

	var rows []types.ReviewView
	err := r.Db.WithContext(ctx).Model(&models.Review{}).
		Select("id, user_name, rating, comment, created_at").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.Db.WithContext(ctx).Model(&models.Review{}).
		Where("product_id = ?", productID).
		Count(&total).Error
	return rows, total, err
}
