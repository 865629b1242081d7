package models

import "time"

type WishlistItem struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int       `gorm:"column:user_id;not null;uniqueIndex:uq_user_product,priority:1" json:"user_id"`
	ProductID int       `gorm:"column:product_id;not null;uniqueIndex:uq_user_product,priority:2" json:"product_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist"
}
