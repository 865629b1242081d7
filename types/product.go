package types

import "SnackShop/models"

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortSold      = "sold"
	SortNewest    = "newest"
)

type ProductFilter struct {
	Cat         string
	Search      string
	Sort        string
	Page        int
	Limit       int
	PriceMin    *int
	PriceMax    *int
	HasDiscount bool
}

// ProductView 商品行加上分类冗余字段
type ProductView struct {
	models.Product
	CategoryName  string `gorm:"column:category_name" json:"category_name"`
	CategoryEmoji string `gorm:"column:category_emoji" json:"category_emoji"`
}

type CreateProductRequest struct {
	Name          string  `json:"name"`
	CategoryID    string  `json:"category_id"`
	Price         int     `json:"price"`
	OriginalPrice *int    `json:"original_price"`
	Description   string  `json:"description"`
	Emoji         string  `json:"emoji"`
	Color         string  `json:"color"`
	Badge         *string `json:"badge"`
	Stock         *int    `json:"stock"`
}

// UpdateProductRequest nil 表示保持不变；badge/original_price 允许显式清空
type UpdateProductRequest struct {
	Name          *string `json:"name"`
	CategoryID    *string `json:"category_id"`
	Price         *int    `json:"price"`
	OriginalPrice *int    `json:"original_price"`
	Description   *string `json:"description"`
	Emoji         *string `json:"emoji"`
	Color         *string `json:"color"`
	Badge         *string `json:"badge"`
	IsActive      *bool   `json:"is_active"`
	Stock         *int    `json:"stock"`
}
