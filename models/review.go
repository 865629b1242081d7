package models

import "time"

// Review 每个用户对同一商品只能评价一次
type Review struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int       `gorm:"column:product_id;not null;index:idx_reviews_product;uniqueIndex:uq_review_product_user,priority:1" json:"product_id"`
	UserID    *int      `gorm:"column:user_id;uniqueIndex:uq_review_product_user,priority:2" json:"user_id"`
	UserName  string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	Rating    int       `gorm:"column:rating;type:tinyint;not null;default:5" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
