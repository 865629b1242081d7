package service

import (
	"context"
	"strings"

	"SnackShop/config"
	"SnackShop/models"
	"SnackShop/pkg/response"
	"SnackShop/types"
)

// ReviewStore dao.Review 实现
type ReviewStore interface {
	Exists(ctx context.Context, productID, userID int) (bool, error)
	Create(ctx context.Context, review *models.Review) error
	ListByProduct(ctx context.Context, productID, page, limit int) ([]types.ReviewView, int64, error)
}

// RatedCatalog dao.Product 实现
type RatedCatalog interface {
	FindActiveByID(ctx context.Context, id int) (*types.ProductView, error)
	RefreshRatingStats(ctx context.Context, productID int) error
}

// PurchaseChecker dao.Order 实现
type PurchaseChecker interface {
	HasDoneOrderWithProduct(ctx context.Context, userID, productID int) (bool, error)
}

type ReviewService struct {
	Config  *config.Config
	Store   ReviewStore
	Catalog RatedCatalog
	Orders  PurchaseChecker
}

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	Submit(ctx context.Context, userID int, userName string, req *types.CreateReviewRequest) error
	List(ctx context.Context, productID, page, limit int) ([]types.ReviewView, int64, error)
}

// Submit 校验通过后插入评价，然后从 reviews 表整体重算商品评分，不做增量平均
func (s *ReviewService) Submit(ctx context.Context, userID int, userName string, req *types.CreateReviewRequest) error {
	comment := strings.TrimSpace(req.Comment)
	if req.ProductID <= 0 || req.Rating == 0 || comment == "" {
		return response.BadRequest("product_id, rating and comment are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return response.BadRequest("rating must be between 1 and 5")
	}

	product, err := s.Catalog.FindActiveByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return response.NotFound("product not found")
	}

	exists, err := s.Store.Exists(ctx, req.ProductID, userID)
	if err != nil {
		return err
	}
	if exists {
		return response.Conflict("you have already reviewed this product")
	}

	if s.Config.Review != nil && s.Config.Review.RequirePurchase {
		purchased, err := s.Orders.HasDoneOrderWithProduct(ctx, userID, req.ProductID)
		if err != nil {
			return err
		}
		if !purchased {
			return response.Forbidden("only verified buyers can review this product")
		}
	}

	if userName == "" {
		userName = "Khách"
	}
	review := &models.Review{
		ProductID: req.ProductID,
		UserID:    &userID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   comment,
	}
	if err := s.Store.Create(ctx, review); err != nil {
		return err
	}

	return s.Catalog.RefreshRatingStats(ctx, req.ProductID)
}

func (s *ReviewService) List(ctx context.Context, productID, page, limit int) ([]types.ReviewView, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.Store.ListByProduct(ctx, productID, page, limit)
}
