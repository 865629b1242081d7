package types

import "SnackShop/models"

type OrderItemInput struct {
	ProductID   *int   `json:"product_id"`
	ProductName string `json:"product_name"`
	Emoji       string `json:"emoji"`
	Price       int    `json:"price"`
	Qty         int    `json:"qty"`
}

type PlaceOrderRequest struct {
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerAddress string           `json:"customer_address"`
	Note            string           `json:"note"`
	PaymentMethod   string           `json:"payment_method"`
	Items           []OrderItemInput `json:"items"`
	UserID          *int             `json:"user_id"`
}

type PlaceOrderResponse struct {
	OrderID       int    `json:"order_id"`
	TotalPrice    int    `json:"total_price"`
	ShippingFee   int    `json:"shipping_fee"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

// OrderSummary 列表行，item_count 来自聚合 join
type OrderSummary struct {
	models.Order
	ItemCount int `gorm:"column:item_count" json:"item_count"`
}

type OrderDetail struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

// UserOrderRow 用户历史订单，商品概要用 ||| 拼接
type UserOrderRow struct {
	models.Order
	ProductNames  string `gorm:"column:product_names" json:"product_names"`
	ProductQtys   string `gorm:"column:product_qtys" json:"product_qtys"`
	ProductEmojis string `gorm:"column:product_emojis" json:"product_emojis"`
	ProductImages string `gorm:"column:product_images" json:"product_images"`
	ProductIDs    string `gorm:"column:product_ids" json:"product_ids"`
	TotalQty      int    `gorm:"column:total_qty" json:"total_qty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderListFilter struct {
	Status string
	Page   int
	Limit  int
}
