package types

import "time"

// WishlistProduct 收藏列表行，join 了商品和分类
type WishlistProduct struct {
	ID            int       `gorm:"column:id" json:"id"`
	Name          string    `gorm:"column:name" json:"name"`
	Price         int       `gorm:"column:price" json:"price"`
	OriginalPrice *int      `gorm:"column:original_price" json:"original_price"`
	ImageURL      *string   `gorm:"column:image_url" json:"image_url"`
	Emoji         string    `gorm:"column:emoji" json:"emoji"`
	Color         string    `gorm:"column:color" json:"color"`
	Rating        float64   `gorm:"column:rating" json:"rating"`
	Reviews       int       `gorm:"column:reviews" json:"reviews"`
	Badge         *string   `gorm:"column:badge" json:"badge"`
	Stock         int       `gorm:"column:stock" json:"stock"`
	CategoryName  string    `gorm:"column:category_name" json:"category_name"`
	SavedAt       time.Time `gorm:"column:saved_at" json:"saved_at"`
}

type ToggleWishlistResponse struct {
	Added bool `json:"added"`
}
