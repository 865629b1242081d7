package models

import "time"

const (
	// StockUnlimited 表示不限库存，扣减逻辑必须跳过
	StockUnlimited = -1
)

type Product struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	CategoryID    string    `gorm:"column:category_id;type:varchar(50);index:idx_products_cat" json:"category_id"`
	Price         int       `gorm:"column:price;not null" json:"price"`
	OriginalPrice *int      `gorm:"column:original_price" json:"original_price"`
	Rating        float64   `gorm:"column:rating;type:decimal(2,1);not null;default:0" json:"rating"`
	Reviews       int       `gorm:"column:reviews;not null;default:0" json:"reviews"`
	Sold          int       `gorm:"column:sold;not null;default:0;index:idx_products_active_sold,priority:2" json:"sold"`
	Badge         *string   `gorm:"column:badge;type:varchar(50)" json:"badge"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	Emoji         string    `gorm:"column:emoji;type:varchar(10)" json:"emoji"`
	Color         string    `gorm:"column:color;type:varchar(20);default:'#FF9B85'" json:"color"`
	ImageURL      *string   `gorm:"column:image_url;type:varchar(500)" json:"image_url"`
	Stock         int       `gorm:"column:stock;not null;default:-1" json:"stock"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true;index:idx_products_active_sold,priority:1" json:"is_active"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
