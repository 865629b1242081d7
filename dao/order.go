package dao

import (
	"context"
	"errors"

	"SnackShop/models"
	"SnackShop/types"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

// CreateWithItems 订单和订单行在一个事务里落库，任何一条失败整体回滚
func (o *Order) CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error {
	return o.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List 列表带 item_count；userID 不为 nil 时只看自己的订单
func (o *Order) List(ctx context.Context, userID *int, f *types.OrderListFilter) ([]types.OrderSummary, error) {
	offset := (f.Page - 1) * f.Limit

	q := o.Db.WithContext(ctx).Table("orders o").
		Select("o.*, COUNT(oi.id) AS item_count").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id")
	if userID != nil {
		q = q.Where("o.user_id = ?", *userID)
	}
	if f.Status != "" {
		q = q.Where("o.status = ?", f.Status)
	}

	var rows []types.OrderSummary
	err := q.Group("o.id").
		Order("o.created_at DESC").
		Limit(f.Limit).Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (o *Order) Count(ctx context.Context, status string) (int64, error) {
	var total int64
	q := o.Db.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&total).Error
	return total, err
}

func (o *Order) Find(ctx context.Context, id int) (*models.Order, error) {
	order, err := o.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (o *Order) Items(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := o.Db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ItemsWithImages 后台订单详情，补上商品当前的图
func (o *Order) ItemsWithImages(ctx context.Context, orderID int) ([]types.StaffOrderItem, error) {
	var items []types.StaffOrderItem
	err := o.Db.WithContext(ctx).Table("order_items oi").
		Select("oi.*, p.image_url AS product_image_url").
		Joins("LEFT JOIN products p ON p.id = oi.product_id").
		Where("oi.order_id = ?", orderID).
		Scan(&items).Error
	return items, err
}

// UpdateStatus 只改状态列，updated_at 由 gorm 维护；返回影响行数用于判断 404
func (o *Order) UpdateStatus(ctx context.Context, id int, status string) (int64, error) {
	res := o.Db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// ListByUser 用户历史订单，每单的商品概要用 ||| 拼接
func (o *Order) ListByUser(ctx context.Context, userID int) ([]types.UserOrderRow, error) {
	var rows []types.UserOrderRow
	err := o.Db.WithContext(ctx).Raw(`
		SELECT o.*,
		       GROUP_CONCAT(oi.product_name  ORDER BY oi.id SEPARATOR '|||') AS product_names,
		       GROUP_CONCAT(oi.qty           ORDER BY oi.id SEPARATOR '|||') AS product_qtys,
		       GROUP_CONCAT(COALESCE(oi.emoji,'🛍️') ORDER BY oi.id SEPARATOR '|||') AS product_emojis,
		       GROUP_CONCAT(COALESCE(p.image_url,'') ORDER BY oi.id SEPARATOR '|||') AS product_images,
		       GROUP_CONCAT(COALESCE(oi.product_id,0) ORDER BY oi.id SEPARATOR '|||') AS product_ids,
		       COALESCE(SUM(oi.qty), 0) AS total_qty
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE o.user_id = ?
		GROUP BY o.id
		ORDER BY o.created_at DESC`,
		userID,
	).Scan(&rows).Error
	return rows, err
}

// ListStaff 后台订单列表，额外拼一个商品名概要
func (o *Order) ListStaff(ctx context.Context, f *types.OrderListFilter) ([]types.StaffOrderRow, error) {
	offset := (f.Page - 1) * f.Limit

	q := o.Db.WithContext(ctx).Table("orders o").
		Select("o.*, COUNT(oi.id) AS item_count, GROUP_CONCAT(oi.product_name SEPARATOR ', ') AS products_summary").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id")
	if f.Status != "" {
		q = q.Where("o.status = ?", f.Status)
	}

	var rows []types.StaffOrderRow
	err := q.Group("o.id").
		Order("o.created_at DESC").
		Limit(f.Limit).Offset(offset).
		Scan(&rows).Error
	return rows, err
}

// HasDoneOrderWithProduct 用户是否有包含该商品的已完成订单
func (o *Order) HasDoneOrderWithProduct(ctx context.Context, userID, productID int) (bool, error) {
	var count int64
	err := o.Db.WithContext(ctx).Table("orders o").
		Joins("JOIN order_items oi ON oi.order_id = o.id").
		Where("o.user_id = ? AND o.status = ? AND oi.product_id = ?", userID, models.OrderStatusDone, productID).
		Count(&count).Error
	return count > 0, err
}
