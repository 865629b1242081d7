package service

import (
	"context"

	"SnackShop/config"
	"SnackShop/dao"
	"SnackShop/dao/cache"
	"SnackShop/models"
	"SnackShop/pkg/response"
	"SnackShop/types"
)

type StaffService struct {
	Config      *config.Config
	StatsDAO    *dao.Stats
	OrderDAO    *dao.Order
	ProductDAO  *dao.Product
	UserDAO     *dao.Users
	CategoryDAO *dao.Category
	Dashboard   *cache.DashboardCache
}

var _ IStaffService = (*StaffService)(nil)

type IStaffService interface {
	GetDashboard(ctx context.Context) (*types.Dashboard, error)
	ListOrders(ctx context.Context, f *types.OrderListFilter) ([]types.StaffOrderRow, int64, error)
	GetOrderDetail(ctx context.Context, orderID int) (*types.StaffOrderDetail, error)
	ListProducts(ctx context.Context) ([]types.ProductView, error)
	DeleteProduct(ctx context.Context, id int) (*string, error)
	ListCustomers(ctx context.Context) ([]types.CustomerRow, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	InvalidateDashboard(ctx context.Context)
}

// GetDashboard 聚合指标 30 秒缓存一份，miss 时现算
func (s *StaffService) GetDashboard(ctx context.Context) (*types.Dashboard, error) {
	if d, ok := s.Dashboard.Get(ctx); ok {
		return d, nil
	}
	d, err := s.StatsDAO.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	s.Dashboard.Set(ctx, d)
	return d, nil
}

func (s *StaffService) ListOrders(ctx context.Context, f *types.OrderListFilter) ([]types.StaffOrderRow, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	rows, err := s.OrderDAO.ListStaff(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.OrderDAO.Count(ctx, f.Status)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *StaffService) GetOrderDetail(ctx context.Context, orderID int) (*types.StaffOrderDetail, error) {
	order, err := s.OrderDAO.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, response.NotFound("order not found")
	}
	items, err := s.OrderDAO.ItemsWithImages(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &types.StaffOrderDetail{Order: *order, Items: items}, nil
}

func (s *StaffService) ListProducts(ctx context.Context) ([]types.ProductView, error) {
	return s.ProductDAO.ListAll(ctx)
}

// DeleteProduct 后台硬删除，返回旧图路径让上层清文件。
// 订单行存的是下单时的快照，product_id 悬空不影响历史订单展示
func (s *StaffService) DeleteProduct(ctx context.Context, id int) (*string, error) {
	imageURL, err := s.ProductDAO.ImageURL(ctx, id)
	if err != nil {
		return nil, response.NotFound("product not found")
	}
	if err := s.ProductDAO.Db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return nil, err
	}
	return imageURL, nil
}

func (s *StaffService) ListCustomers(ctx context.Context) ([]types.CustomerRow, error) {
	return s.UserDAO.ListCustomers(ctx)
}

func (s *StaffService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryDAO.ListReal(ctx)
}

func (s *StaffService) InvalidateDashboard(ctx context.Context) {
	s.Dashboard.Invalidate(ctx)
}
