package dao

import (
	"context"
	"errors"

	"SnackShop/models"
	"SnackShop/types"

	"gorm.io/gorm"
)

type Wishlist struct {
	Repo[models.WishlistItem]
}

func NewWishlist(db *gorm.DB) *Wishlist {
	return &Wishlist{
		Repo: NewRepo[models.WishlistItem](db),
	}
}

func (w *Wishlist) ListProducts(ctx context.Context, userID int) ([]types.WishlistProduct, error) {
	var rows []types.WishlistProduct
	err := w.Db.WithContext(ctx).Table("wishlist w").
		Select(`p.id, p.name, p.price, p.original_price, p.image_url, p.emoji, p.color,
			p.rating, p.reviews, p.badge, p.stock,
			c.name AS category_name, w.created_at AS saved_at`).
		Joins("JOIN products p ON p.id = w.product_id").
		Joins("LEFT JOIN categories c ON c.id = p.category_id").
		Where("w.user_id = ? AND p.is_active = ?", userID, true).
		Order("w.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (w *Wishlist) ListIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	err := w.Db.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Pluck("product_id", &ids).Error
	return ids, err
}

func (w *Wishlist) Exists(ctx context.Context, userID, productID int) (bool, error) {
	var item models.WishlistItem
	err := w.Db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (w *Wishlist) Add(ctx context.Context, userID, productID int) error {
	return w.Db.WithContext(ctx).Create(&models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}).Error
}

func (w *Wishlist) Remove(ctx context.Context, userID, productID int) error {
	return w.Db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}
