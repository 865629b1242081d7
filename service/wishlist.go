package service

import (
	"context"

	"SnackShop/config"
	"SnackShop/dao"
	"SnackShop/pkg/response"
	"SnackShop/types"
)

type WishlistService struct {
	Config      *config.Config
	WishlistDAO *dao.Wishlist
	ProductDAO  *dao.Product
}

var _ IWishlistService = (*WishlistService)(nil)

type IWishlistService interface {
	List(ctx context.Context, userID int) ([]types.WishlistProduct, error)
	IDs(ctx context.Context, userID int) ([]int, error)
	Toggle(ctx context.Context, userID, productID int) (bool, error)
	Remove(ctx context.Context, userID, productID int) error
}

func (s *WishlistService) List(ctx context.Context, userID int) ([]types.WishlistProduct, error) {
	return s.WishlistDAO.ListProducts(ctx, userID)
}

func (s *WishlistService) IDs(ctx context.Context, userID int) ([]int, error) {
	return s.WishlistDAO.ListIDs(ctx, userID)
}

// Toggle 已收藏就移除，没收藏就加上；重复加不是错误
func (s *WishlistService) Toggle(ctx context.Context, userID, productID int) (bool, error) {
	product, err := s.ProductDAO.FindActiveByID(ctx, productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, response.NotFound("product not found")
	}

	exists, err := s.WishlistDAO.Exists(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.WishlistDAO.Remove(ctx, userID, productID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.WishlistDAO.Add(ctx, userID, productID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID int) error {
	return s.WishlistDAO.Remove(ctx, userID, productID)
}
