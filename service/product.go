package service

import (
	"context"

	"SnackShop/config"
	"SnackShop/dao"
	"SnackShop/models"
	"SnackShop/pkg/response"
	"SnackShop/types"
)

type ProductService struct {
	Config      *config.Config
	ProductDAO  *dao.Product
	CategoryDAO *dao.Category
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	List(ctx context.Context, f *types.ProductFilter) ([]types.ProductView, int64, error)
	Detail(ctx context.Context, id int) (*types.ProductView, error)
	Create(ctx context.Context, req *types.CreateProductRequest, imageURL *string) (int, error)
	Update(ctx context.Context, id int, req *types.UpdateProductRequest, imageURL *string) error
	SoftDelete(ctx context.Context, id int) error
	Categories(ctx context.Context) ([]models.Category, error)
}

func (p *ProductService) List(ctx context.Context, f *types.ProductFilter) ([]types.ProductView, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 16
	}
	return p.ProductDAO.List(ctx, f)
}

func (p *ProductService) Detail(ctx context.Context, id int) (*types.ProductView, error) {
	product, err := p.ProductDAO.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, response.NotFound("product not found")
	}
	return product, nil
}

func (p *ProductService) Create(ctx context.Context, req *types.CreateProductRequest, imageURL *string) (int, error) {
	if req.Name == "" || req.CategoryID == "" || req.Price <= 0 || req.Description == "" || req.Emoji == "" {
		return 0, response.BadRequest("name, category, price, description and emoji are required")
	}

	stock := models.StockUnlimited
	if req.Stock != nil {
		stock = *req.Stock
	}
	color := req.Color
	if color == "" {
		color = "#FF9B85"
	}

	product := &models.Product{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Description:   req.Description,
		Emoji:         req.Emoji,
		Color:         color,
		Badge:         req.Badge,
		ImageURL:      imageURL,
		Stock:         stock,
		IsActive:      true,
	}
	if err := p.ProductDAO.Create(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// Update nil 字段保持不变；传了新图就替换 image_url
func (p *ProductService) Update(ctx context.Context, id int, req *types.UpdateProductRequest, imageURL *string) error {
	values := map[string]any{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.CategoryID != nil {
		values["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		values["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		values["original_price"] = *req.OriginalPrice
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}
	if req.Emoji != nil {
		values["emoji"] = *req.Emoji
	}
	if req.Color != nil {
		values["color"] = *req.Color
	}
	if req.Badge != nil {
		values["badge"] = *req.Badge
	}
	if req.IsActive != nil {
		values["is_active"] = *req.IsActive
	}
	if req.Stock != nil {
		values["stock"] = *req.Stock
	}
	if imageURL != nil {
		values["image_url"] = *imageURL
	}
	if len(values) == 0 {
		return nil
	}

	affected, err := p.ProductDAO.UpdatePartial(ctx, id, values)
	if err != nil {
		return err
	}
	if affected == 0 {
		return response.NotFound("product not found")
	}
	return nil
}

// SoftDelete 下架而不是删行，历史订单和评价还要引用
func (p *ProductService) SoftDelete(ctx context.Context, id int) error {
	affected, err := p.ProductDAO.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return response.NotFound("product not found")
	}
	return nil
}

func (p *ProductService) Categories(ctx context.Context) ([]models.Category, error) {
	return p.CategoryDAO.List(ctx)
}
