package types

import (
	"time"

	"SnackShop/models"
)

type Dashboard struct {
	TotalOrders   int64          `json:"totalOrders"`
	PendingOrders int64          `json:"pendingOrders"`
	TotalRevenue  int64          `json:"totalRevenue"`
	TotalProducts int64          `json:"totalProducts"`
	TotalUsers    int64          `json:"totalUsers"`
	RecentOrders  []models.Order `json:"recentOrders"`
}

// StaffOrderRow 后台订单列表行
type StaffOrderRow struct {
	models.Order
	ItemCount       int    `gorm:"column:item_count" json:"item_count"`
	ProductsSummary string `gorm:"column:products_summary" json:"products_summary"`
}

// StaffOrderItem 订单行加当前商品图（历史行为图可能已变）
type StaffOrderItem struct {
	models.OrderItem
	ProductImageURL *string `gorm:"column:product_image_url" json:"product_image_url"`
}

type StaffOrderDetail struct {
	models.Order
	Items []StaffOrderItem `json:"items"`
}

type CustomerRow struct {
	ID         int       `gorm:"column:id" json:"id"`
	Email      string    `gorm:"column:email" json:"email"`
	FullName   string    `gorm:"column:full_name" json:"full_name"`
	Phone      string    `gorm:"column:phone" json:"phone"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	OrderCount int       `gorm:"column:order_count" json:"order_count"`
	TotalSpent int64     `gorm:"column:total_spent" json:"total_spent"`
}
