package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDone      = "done"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus 状态枚举校验，顺序即生命周期
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping, OrderStatusDone, OrderStatusCancelled:
		return true
	}
	return false
}

// Order 下单时的快照，total_price 含运费，之后不再重算
type Order struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          *int      `gorm:"column:user_id;index:idx_orders_user" json:"user_id"`
	CustomerName    string    `gorm:"column:customer_name;type:varchar(100);not null" json:"customer_name"`
	CustomerPhone   string    `gorm:"column:customer_phone;type:varchar(20);not null" json:"customer_phone"`
	CustomerAddress string    `gorm:"column:customer_address;type:varchar(500);not null" json:"customer_address"`
	Note            string    `gorm:"column:note;type:text" json:"note"`
	PaymentMethod   string    `gorm:"column:payment_method;type:varchar(20);not null;default:'cod'" json:"payment_method"`
	TotalPrice      int       `gorm:"column:total_price;not null" json:"total_price"`
	ShippingFee     int       `gorm:"column:shipping_fee;not null;default:0" json:"shipping_fee"`
	Status          string    `gorm:"column:status;type:varchar(20);not null;default:'pending';index:idx_orders_status,priority:1" json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime;index:idx_orders_status,priority:2" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单行，商品名/emoji/价格在下单时固化
type OrderItem struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int    `gorm:"column:order_id;not null;index:idx_order_items_order" json:"order_id"`
	ProductID   *int   `gorm:"column:product_id" json:"product_id"`
	ProductName string `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	Emoji       string `gorm:"column:emoji;type:varchar(10)" json:"emoji"`
	Price       int    `gorm:"column:price;not null" json:"price"`
	Qty         int    `gorm:"column:qty;not null" json:"qty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
