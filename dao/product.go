package dao

import (
	"context"
	"errors"
	"fmt"

	"SnackShop/models"
	"SnackShop/types"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

var productSortMap = map[string]string{
	types.SortPriceAsc:  "p.price ASC",
	types.SortPriceDesc: "p.price DESC",
	types.SortRating:    "p.rating DESC",
	types.SortSold:      "p.sold DESC",
	types.SortNewest:    "p.created_at DESC",
}

func (p *Product) applyFilter(q *gorm.DB, f *types.ProductFilter) *gorm.DB {
	q = q.Where("p.is_active = ?", true)
	if f.Cat != "" && f.Cat != "all" {
		q = q.Where("p.category_id = ?", f.Cat)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("(p.name LIKE ? OR p.description LIKE ?)", like, like)
	}
	if f.PriceMin != nil {
		q = q.Where("p.price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("p.price <= ?", *f.PriceMax)
	}
	if f.HasDiscount {
		q = q.Where("p.original_price IS NOT NULL AND p.original_price > p.price")
	}
	return q
}

// List 店面商品列表，带分类冗余字段和总数
func (p *Product) List(ctx context.Context, f *types.ProductFilter) ([]types.ProductView, int64, error) {
	order, ok := productSortMap[f.Sort]
	if !ok {
		order = "p.sold DESC"
	}
	offset := (f.Page - 1) * f.Limit

	var rows []types.ProductView
	q := p.Db.WithContext(ctx).Table("products p").
		Select("p.*, c.name AS category_name, c.emoji AS category_emoji").
		Joins("LEFT JOIN categories c ON p.category_id = c.id")
	q = p.applyFilter(q, f)
	if err := q.Order(order).Limit(f.Limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	cq := p.Db.WithContext(ctx).Table("products p")
	cq = p.applyFilter(cq, f)
	if err := cq.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (p *Product) FindActiveByID(ctx context.Context, id int) (*types.ProductView, error) {
	var row types.ProductView
	err := p.Db.WithContext(ctx).Table("products p").
		Select("p.*, c.name AS category_name, c.emoji AS category_emoji").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Where("p.id = ? AND p.is_active = ?", id, true).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListAll 后台列表，含下架商品
func (p *Product) ListAll(ctx context.Context) ([]types.ProductView, error) {
	var rows []types.ProductView
	err := p.Db.WithContext(ctx).Table("products p").
		Select("p.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Order("p.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (p *Product) UpdatePartial(ctx context.Context, id int, values map[string]any) (int64, error) {
	return p.UpdateByID(ctx, id, values)
}

func (p *Product) SoftDelete(ctx context.Context, id int) (int64, error) {
	return p.UpdateByID(ctx, id, map[string]any{"is_active": false})
}

// AddSold 累计销量
func (p *Product) AddSold(ctx context.Context, id, qty int) error {
	return p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("sold", gorm.Expr("sold + ?", qty)).Error
}

// DecrementStock 条件扣减：stock=-1 不限库存不动，扣到 0 为止。
// WHERE stock > 0 配合 GREATEST 让并发扣减不会出现负库存。
func (p *Product) DecrementStock(ctx context.Context, id, qty int) error {
	return p.Db.WithContext(ctx).Exec(
		"UPDATE products SET stock = GREATEST(0, stock - ?) WHERE id = ? AND stock > 0",
		qty, id,
	).Error
}

// RefreshRatingStats 评分和评价数每次从 reviews 表整体重算，避免增量累计漂移
func (p *Product) RefreshRatingStats(ctx context.Context, productID int) error {
	return p.Db.WithContext(ctx).Exec(`
		UPDATE products
		SET rating  = COALESCE((SELECT ROUND(AVG(rating), 1) FROM reviews WHERE product_id = ?), 0),
		    reviews = (SELECT COUNT(*) FROM reviews WHERE product_id = ?)
		WHERE id = ?`,
		productID, productID, productID,
	).Error
}

func (p *Product) ImageURL(ctx context.Context, id int) (*string, error) {
	prod, err := p.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d not found: %w", id, err)
		}
		return nil, err
	}
	return prod.ImageURL, nil
}
