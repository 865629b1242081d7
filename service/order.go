package service

import (
	"context"
	"fmt"
	"strings"

	"SnackShop/config"
	"SnackShop/models"
	"SnackShop/pkg/log"
	"SnackShop/pkg/response"
	"SnackShop/types"

	"go.uber.org/zap"
)

const defaultItemEmoji = "🛍️"

// OrderStore 订单持久化，dao.Order 实现
type OrderStore interface {
	CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error
	List(ctx context.Context, userID *int, f *types.OrderListFilter) ([]types.OrderSummary, error)
	Count(ctx context.Context, status string) (int64, error)
	Find(ctx context.Context, id int) (*models.Order, error)
	Items(ctx context.Context, orderID int) ([]models.OrderItem, error)
	ItemsWithImages(ctx context.Context, orderID int) ([]types.StaffOrderItem, error)
	UpdateStatus(ctx context.Context, id int, status string) (int64, error)
	ListByUser(ctx context.Context, userID int) ([]types.UserOrderRow, error)
	ListStaff(ctx context.Context, f *types.OrderListFilter) ([]types.StaffOrderRow, error)
}

// InventoryStore 销量/库存副作用，dao.Product 实现
type InventoryStore interface {
	AddSold(ctx context.Context, id, qty int) error
	DecrementStock(ctx context.Context, id, qty int) error
}

type OrderService struct {
	Config    *config.Config
	Store     OrderStore
	Inventory InventoryStore
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	PlaceOrder(ctx context.Context, req *types.PlaceOrderRequest) (*types.PlaceOrderResponse, []string, error)
	ListOrders(ctx context.Context, actorRole string, actorID int, f *types.OrderListFilter) ([]types.OrderSummary, error)
	GetOrderDetail(ctx context.Context, actorRole string, actorID, orderID int) (*types.OrderDetail, error)
	SetStatus(ctx context.Context, actorRole string, orderID int, status string) error
	ListUserOrders(ctx context.Context, actorRole string, actorID, userID int) ([]types.UserOrderRow, error)
}

// PlaceOrder 下单。订单和订单行在一个事务里写入，全部成功或全部回滚；
// 随后的销量/库存更新是尽力而为，单项失败只产生 warning，绝不让已落库的订单失败。
func (s *OrderService) PlaceOrder(ctx context.Context, req *types.PlaceOrderRequest) (*types.PlaceOrderResponse, []string, error) {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.CustomerPhone) == "" ||
		strings.TrimSpace(req.CustomerAddress) == "" {
		return nil, nil, response.BadRequest("recipient name, phone and address are required")
	}
	if len(req.Items) == 0 {
		return nil, nil, response.BadRequest("order has no items")
	}
	for i, item := range req.Items {
		if item.Qty <= 0 {
			return nil, nil, response.BadRequest(fmt.Sprintf("item %d: qty must be positive", i+1))
		}
		if item.Price < 0 {
			return nil, nil, response.BadRequest(fmt.Sprintf("item %d: invalid price", i+1))
		}
		if strings.TrimSpace(item.ProductName) == "" {
			return nil, nil, response.BadRequest(fmt.Sprintf("item %d: product_name is required", i+1))
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	// 行项价格直接采用请求里的值，单价在此刻固化（见 DESIGN.md 的取舍说明）
	subtotal := 0
	for _, item := range req.Items {
		subtotal += item.Price * item.Qty
	}
	shippingFee := ComputeShippingFee(subtotal)
	grandTotal := subtotal + shippingFee

	order := &models.Order{
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Note:            req.Note,
		PaymentMethod:   paymentMethod,
		TotalPrice:      grandTotal,
		ShippingFee:     shippingFee,
		Status:          models.OrderStatusPending,
	}

	items := make([]*models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		emoji := item.Emoji
		if emoji == "" {
			emoji = defaultItemEmoji
		}
		items = append(items, &models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Emoji:       emoji,
			Price:       item.Price,
			Qty:         item.Qty,
		})
	}

	if err := s.Store.CreateWithItems(ctx, order, items); err != nil {
		return nil, nil, fmt.Errorf("create order: %w", err)
	}

	// 订单已经落库，这里的失败不回滚订单
	var warnings []string
	for _, item := range req.Items {
		if item.ProductID == nil {
			continue
		}
		if err := s.Inventory.AddSold(ctx, *item.ProductID, item.Qty); err != nil {
			warnings = append(warnings, fmt.Sprintf("product %d: sold update failed", *item.ProductID))
			log.L.Warn("sold update failed",
				zap.Int("order_id", order.ID),
				zap.Int("product_id", *item.ProductID),
				zap.Error(err),
			)
		}
		if err := s.Inventory.DecrementStock(ctx, *item.ProductID, item.Qty); err != nil {
			warnings = append(warnings, fmt.Sprintf("product %d: stock update failed", *item.ProductID))
			log.L.Warn("stock update failed",
				zap.Int("order_id", order.ID),
				zap.Int("product_id", *item.ProductID),
				zap.Error(err),
			)
		}
	}

	return &types.PlaceOrderResponse{
		OrderID:       order.ID,
		TotalPrice:    grandTotal,
		ShippingFee:   shippingFee,
		PaymentMethod: paymentMethod,
		Status:        models.OrderStatusPending,
	}, warnings, nil
}

// ListOrders 非 admin 只能看到自己的订单，传什么过滤条件都一样
func (s *OrderService) ListOrders(ctx context.Context, actorRole string, actorID int, f *types.OrderListFilter) ([]types.OrderSummary, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	var scope *int
	if actorRole != models.RoleAdmin {
		scope = &actorID
	}
	return s.Store.List(ctx, scope, f)
}

// GetOrderDetail 非本人且非 admin 返回 403 而不是 404，订单存在性不隐藏
func (s *OrderService) GetOrderDetail(ctx context.Context, actorRole string, actorID, orderID int) (*types.OrderDetail, error) {
	order, err := s.Store.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, response.NotFound("order not found")
	}
	if actorRole != models.RoleAdmin && (order.UserID == nil || *order.UserID != actorID) {
		return nil, response.Forbidden("you cannot view this order")
	}

	items, err := s.Store.Items(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &types.OrderDetail{Order: *order, Items: items}, nil
}

// SetStatus 只校验值在枚举里，不做前驱状态检查；取消不回补库存
func (s *OrderService) SetStatus(ctx context.Context, actorRole string, orderID int, status string) error {
	if actorRole != models.RoleAdmin && actorRole != models.RoleStaff {
		return response.Forbidden("only staff or admin can update order status")
	}
	if !models.ValidOrderStatus(status) {
		return response.BadRequest("invalid status: " + status)
	}

	affected, err := s.Store.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return response.NotFound("order not found")
	}
	return nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, actorRole string, actorID, userID int) ([]types.UserOrderRow, error) {
	if actorRole != models.RoleAdmin && actorID != userID {
		return nil, response.Forbidden("you cannot view these orders")
	}
	return s.Store.ListByUser(ctx, userID)
}
