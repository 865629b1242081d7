package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SnackShop/config"
	"SnackShop/models"
	"SnackShop/pkg/response"
	"SnackShop/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubStaffService struct {
	hardDeleted []int
	deleteErr   error
	dashHits    int
}

func (s *stubStaffService) GetDashboard(context.Context) (*types.Dashboard, error) {
	s.dashHits++
	return &types.Dashboard{}, nil
}

func (s *stubStaffService) ListOrders(context.Context, *types.OrderListFilter) ([]types.StaffOrderRow, int64, error) {
	return nil, 0, nil
}

func (s *stubStaffService) GetOrderDetail(context.Context, int) (*types.StaffOrderDetail, error) {
	return &types.StaffOrderDetail{}, nil
}

func (s *stubStaffService) ListProducts(context.Context) ([]types.ProductView, error) {
	return nil, nil
}

func (s *stubStaffService) DeleteProduct(_ context.Context, id int) (*string, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	s.hardDeleted = append(s.hardDeleted, id)
	return nil, nil
}

func (s *stubStaffService) ListCustomers(context.Context) ([]types.CustomerRow, error) {
	return nil, nil
}

func (s *stubStaffService) ListCategories(context.Context) ([]models.Category, error) {
	return nil, nil
}

func (s *stubStaffService) InvalidateDashboard(context.Context) {}

type stubProductService struct {
	softDeleted []int
	softErr     error
}

func (s *stubProductService) List(context.Context, *types.ProductFilter) ([]types.ProductView, int64, error) {
	return nil, 0, nil
}

func (s *stubProductService) Detail(context.Context, int) (*types.ProductView, error) {
	return &types.ProductView{}, nil
}

func (s *stubProductService) Create(context.Context, *types.CreateProductRequest, *string) (int, error) {
	return 0, nil
}

func (s *stubProductService) Update(context.Context, int, *types.UpdateProductRequest, *string) error {
	return nil
}

func (s *stubProductService) SoftDelete(_ context.Context, id int) error {
	if s.softErr != nil {
		return s.softErr
	}
	s.softDeleted = append(s.softDeleted, id)
	return nil
}

func (s *stubProductService) Categories(context.Context) ([]models.Category, error) {
	return nil, nil
}

func staffTestRouter(staffSvc *stubStaffService, productSvc *stubProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Staff{
		Config:         &config.Config{Jwt: &config.Jwt{Secret: handlerTestSecret}},
		StaffService:   staffSvc,
		OrderService:   &stubOrderService{},
		ProductService: productSvc,
	}
	h.RegisterRouter(r.Group("/api"))
	return r
}

func staffRequest(t *testing.T, r *gin.Engine, method, path, auth string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStaffRoutes_RoleGate(t *testing.T) {
	staffSvc := &stubStaffService{}
	r := staffTestRouter(staffSvc, &stubProductService{})

	assert.Equal(t, http.StatusUnauthorized, staffRequest(t, r, http.MethodGet, "/api/staff/dashboard", "").Code)
	// customer 拿不到后台数据，业务层也不能被碰到
	assert.Equal(t, http.StatusForbidden, staffRequest(t, r, http.MethodGet, "/api/staff/dashboard", bearerToken(t, 1, models.RoleCustomer)).Code)
	assert.Equal(t, 0, staffSvc.dashHits)

	assert.Equal(t, http.StatusOK, staffRequest(t, r, http.MethodGet, "/api/staff/dashboard", bearerToken(t, 2, models.RoleStaff)).Code)
	assert.Equal(t, http.StatusOK, staffRequest(t, r, http.MethodGet, "/api/staff/dashboard", bearerToken(t, 3, models.RoleAdmin)).Code)
	assert.Equal(t, 2, staffSvc.dashHits)
}

func TestDeleteProductRoute_SoftByDefault(t *testing.T) {
	staffSvc := &stubStaffService{}
	productSvc := &stubProductService{}
	r := staffTestRouter(staffSvc, productSvc)

	w := staffRequest(t, r, http.MethodDelete, "/api/staff/products/5", bearerToken(t, 2, models.RoleStaff))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deactivated")
	assert.Equal(t, []int{5}, productSvc.softDeleted)
	assert.Empty(t, staffSvc.hardDeleted)
}

func TestDeleteProductRoute_HardVariant(t *testing.T) {
	staffSvc := &stubStaffService{}
	productSvc := &stubProductService{}
	r := staffTestRouter(staffSvc, productSvc)

	w := staffRequest(t, r, http.MethodDelete, "/api/staff/products/5?hard=true", bearerToken(t, 3, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
	assert.Equal(t, []int{5}, staffSvc.hardDeleted)
	assert.Empty(t, productSvc.softDeleted)
}

func TestDeleteProductRoute_NotFound(t *testing.T) {
	productSvc := &stubProductService{softErr: response.NotFound("product not found")}
	r := staffTestRouter(&stubStaffService{}, productSvc)

	w := staffRequest(t, r, http.MethodDelete, "/api/staff/products/99", bearerToken(t, 2, models.RoleStaff))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
