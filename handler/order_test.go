package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SnackShop/config"
	"SnackShop/models"
	"SnackShop/pkg/jwt"
	"SnackShop/pkg/response"
	"SnackShop/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "handler-test-secret"

type stubOrderService struct {
	placeResp   *types.PlaceOrderResponse
	placeErr    error
	placedReq   *types.PlaceOrderRequest
	setStatuses []string
}

func (s *stubOrderService) PlaceOrder(_ context.Context, req *types.PlaceOrderRequest) (*types.PlaceOrderResponse, []string, error) {
	s.placedReq = req
	return s.placeResp, nil, s.placeErr
}

func (s *stubOrderService) ListOrders(context.Context, string, int, *types.OrderListFilter) ([]types.OrderSummary, error) {
	return []types.OrderSummary{}, nil
}

func (s *stubOrderService) GetOrderDetail(context.Context, string, int, int) (*types.OrderDetail, error) {
	return &types.OrderDetail{}, nil
}

func (s *stubOrderService) SetStatus(_ context.Context, _ string, _ int, status string) error {
	s.setStatuses = append(s.setStatuses, status)
	return nil
}

func (s *stubOrderService) ListUserOrders(context.Context, string, int, int) ([]types.UserOrderRow, error) {
	return nil, nil
}

func orderTestRouter(svc *stubOrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Order{
		Config:       &config.Config{Jwt: &config.Jwt{Secret: handlerTestSecret}},
		OrderService: svc,
	}
	h.RegisterRouter(r.Group("/api"))
	return r
}

func bearerToken(t *testing.T, userID int, role string) string {
	t.Helper()
	token, err := jwt.GenerateToken([]byte(handlerTestSecret), userID, "u@example.com", "U", role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPlaceOrderRoute_GuestAllowed(t *testing.T) {
	svc := &stubOrderService{
		placeResp: &types.PlaceOrderResponse{
			OrderID: 42, TotalPrice: 110000, ShippingFee: 30000,
			PaymentMethod: "cod", Status: models.OrderStatusPending,
		},
	}
	r := orderTestRouter(svc)

	body := `{"customer_name":"A","customer_phone":"090","customer_address":"HN","items":[{"product_name":"Snack","price":80000,"qty":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			OrderID int `json:"order_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 42, resp.Data.OrderID)
	require.NotNil(t, svc.placedReq)
	assert.Equal(t, "A", svc.placedReq.CustomerName)
}

func TestPlaceOrderRoute_BadJSON(t *testing.T) {
	r := orderTestRouter(&stubOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestPlaceOrderRoute_BizErrorStatus(t *testing.T) {
	svc := &stubOrderService{placeErr: response.BadRequest("order has no items")}
	r := orderTestRouter(svc)

	body := `{"customer_name":"A","customer_phone":"090","customer_address":"HN","items":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "order has no items")
}

func TestListOrdersRoute_RequiresToken(t *testing.T) {
	r := orderTestRouter(&stubOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, 7, models.RoleCustomer))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateStatusRoute_AdminOnly(t *testing.T) {
	svc := &stubOrderService{}
	r := orderTestRouter(svc)

	patch := func(auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/api/orders/1/status", strings.NewReader(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", auth)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// 这个入口 staff 也不行，后台走 /staff 路由
	assert.Equal(t, http.StatusForbidden, patch(bearerToken(t, 1, models.RoleCustomer)).Code)
	assert.Equal(t, http.StatusForbidden, patch(bearerToken(t, 2, models.RoleStaff)).Code)
	assert.Empty(t, svc.setStatuses)

	assert.Equal(t, http.StatusOK, patch(bearerToken(t, 3, models.RoleAdmin)).Code)
	assert.Equal(t, []string{"confirmed"}, svc.setStatuses)
}
