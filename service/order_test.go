package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"SnackShop/models"
	"SnackShop/pkg/response"
	"SnackShop/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	created      *models.Order
	createdItems []*models.OrderItem
	createErr    error

	orders map[int]*models.Order
	items  map[int][]models.OrderItem

	updatedStatus map[int]string
	affected      int64

	listScope  *int
	listFilter *types.OrderListFilter
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders:        map[int]*models.Order{},
		items:         map[int][]models.OrderItem{},
		updatedStatus: map[int]string{},
	}
}

func (f *fakeOrderStore) CreateWithItems(_ context.Context, order *models.Order, items []*models.OrderItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = 42
	f.created = order
	f.createdItems = items
	return nil
}

func (f *fakeOrderStore) List(_ context.Context, userID *int, filter *types.OrderListFilter) ([]types.OrderSummary, error) {
	f.listScope = userID
	f.listFilter = filter
	return nil, nil
}

func (f *fakeOrderStore) Count(context.Context, string) (int64, error) { return 0, nil }

func (f *fakeOrderStore) Find(_ context.Context, id int) (*models.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderStore) Items(_ context.Context, orderID int) ([]models.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderStore) ItemsWithImages(context.Context, int) ([]types.StaffOrderItem, error) {
	return nil, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id int, status string) (int64, error) {
	if f.affected > 0 {
		f.updatedStatus[id] = status
	}
	return f.affected, nil
}

func (f *fakeOrderStore) ListByUser(context.Context, int) ([]types.UserOrderRow, error) {
	return nil, nil
}

func (f *fakeOrderStore) ListStaff(context.Context, *types.OrderListFilter) ([]types.StaffOrderRow, error) {
	return nil, nil
}

type fakeInventory struct {
	soldCalls  []string
	stockCalls []string
	soldErr    error
	stockErr   error
}

func (f *fakeInventory) AddSold(_ context.Context, id, qty int) error {
	f.soldCalls = append(f.soldCalls, fmt.Sprintf("%d:%d", id, qty))
	return f.soldErr
}

func (f *fakeInventory) DecrementStock(_ context.Context, id, qty int) error {
	f.stockCalls = append(f.stockCalls, fmt.Sprintf("%d:%d", id, qty))
	return f.stockErr
}

func intPtr(v int) *int { return &v }

func validOrderRequest() *types.PlaceOrderRequest {
	return &types.PlaceOrderRequest{
		CustomerName:    "Nguyen Van A",
		CustomerPhone:   "0901234567",
		CustomerAddress: "12 Ly Thuong Kiet, Ha Noi",
		Items: []types.OrderItemInput{
			{ProductID: intPtr(1), ProductName: "Banh trang tron", Price: 25000, Qty: 2},
			{ProductID: intPtr(2), ProductName: "Tra sua", Emoji: "🧋", Price: 30000, Qty: 1},
		},
	}
}

func TestPlaceOrder_Totals(t *testing.T) {
	store := newFakeOrderStore()
	inv := &fakeInventory{}
	svc := &OrderService{Store: store, Inventory: inv}

	resp, warnings, err := svc.PlaceOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)
	require.Empty(t, warnings)

	// 25000*2 + 30000 = 80000，不到包邮线
	assert.Equal(t, 42, resp.OrderID)
	assert.Equal(t, FlatShippingFee, resp.ShippingFee)
	assert.Equal(t, 80000+FlatShippingFee, resp.TotalPrice)
	assert.Equal(t, "cod", resp.PaymentMethod)
	assert.Equal(t, models.OrderStatusPending, resp.Status)

	require.NotNil(t, store.created)
	assert.Equal(t, resp.TotalPrice, store.created.TotalPrice)
	require.Len(t, store.createdItems, 2)
	assert.Equal(t, defaultItemEmoji, store.createdItems[0].Emoji)
	assert.Equal(t, "🧋", store.createdItems[1].Emoji)
}

func TestPlaceOrder_FreeShipping(t *testing.T) {
	store := newFakeOrderStore()
	svc := &OrderService{Store: store, Inventory: &fakeInventory{}}

	req := validOrderRequest()
	req.Items = []types.OrderItemInput{
		{ProductName: "Gift box", Price: FreeShippingThreshold, Qty: 1},
	}

	resp, _, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.ShippingFee)
	assert.Equal(t, FreeShippingThreshold, resp.TotalPrice)
}

func TestPlaceOrder_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.PlaceOrderRequest)
	}{
		{"missing name", func(r *types.PlaceOrderRequest) { r.CustomerName = "  " }},
		{"missing phone", func(r *types.PlaceOrderRequest) { r.CustomerPhone = "" }},
		{"missing address", func(r *types.PlaceOrderRequest) { r.CustomerAddress = "" }},
		{"no items", func(r *types.PlaceOrderRequest) { r.Items = nil }},
		{"zero qty", func(r *types.PlaceOrderRequest) { r.Items[0].Qty = 0 }},
		{"negative qty", func(r *types.PlaceOrderRequest) { r.Items[1].Qty = -1 }},
		{"negative price", func(r *types.PlaceOrderRequest) { r.Items[0].Price = -100 }},
		{"blank product name", func(r *types.PlaceOrderRequest) { r.Items[0].ProductName = " " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeOrderStore()
			inv := &fakeInventory{}
			svc := &OrderService{Store: store, Inventory: inv}

			req := validOrderRequest()
			tt.mutate(req)

			_, _, err := svc.PlaceOrder(context.Background(), req)
			var bizErr *response.BizError
			require.ErrorAs(t, err, &bizErr)
			assert.Equal(t, http.StatusBadRequest, bizErr.Code)

			// 校验失败什么都不该写
			assert.Nil(t, store.created)
			assert.Empty(t, inv.soldCalls)
		})
	}
}

func TestPlaceOrder_StoreFailureAbortsEverything(t *testing.T) {
	store := newFakeOrderStore()
	store.createErr = errors.New("deadlock")
	inv := &fakeInventory{}
	svc := &OrderService{Store: store, Inventory: inv}

	_, warnings, err := svc.PlaceOrder(context.Background(), validOrderRequest())
	require.Error(t, err)
	assert.Empty(t, warnings)
	// 订单没落库，库存绝不能动
	assert.Empty(t, inv.soldCalls)
	assert.Empty(t, inv.stockCalls)
}

func TestPlaceOrder_InventoryFailureOnlyWarns(t *testing.T) {
	store := newFakeOrderStore()
	inv := &fakeInventory{stockErr: errors.New("connection reset")}
	svc := &OrderService{Store: store, Inventory: inv}

	resp, warnings, err := svc.PlaceOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)
	assert.Equal(t, 42, resp.OrderID)
	// 两个商品各自产生一条 stock warning，sold 正常
	assert.Len(t, warnings, 2)
	assert.Len(t, inv.soldCalls, 2)
	assert.Len(t, inv.stockCalls, 2)
}

func TestPlaceOrder_SkipsItemsWithoutProductID(t *testing.T) {
	store := newFakeOrderStore()
	inv := &fakeInventory{}
	svc := &OrderService{Store: store, Inventory: inv}

	req := validOrderRequest()
	req.Items = []types.OrderItemInput{
		{ProductName: "Custom basket", Price: 10000, Qty: 1},
		{ProductID: intPtr(7), ProductName: "Keo deo", Price: 5000, Qty: 3},
	}

	_, warnings, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"7:3"}, inv.soldCalls)
	assert.Equal(t, []string{"7:3"}, inv.stockCalls)
}

func TestListOrders_ScopedByRole(t *testing.T) {
	store := newFakeOrderStore()
	svc := &OrderService{Store: store}

	_, err := svc.ListOrders(context.Background(), models.RoleCustomer, 9, &types.OrderListFilter{})
	require.NoError(t, err)
	require.NotNil(t, store.listScope)
	assert.Equal(t, 9, *store.listScope)
	assert.Equal(t, 1, store.listFilter.Page)
	assert.Equal(t, 20, store.listFilter.Limit)

	_, err = svc.ListOrders(context.Background(), models.RoleAdmin, 9, &types.OrderListFilter{Page: 2, Limit: 50})
	require.NoError(t, err)
	assert.Nil(t, store.listScope)
	assert.Equal(t, 2, store.listFilter.Page)
}

func TestGetOrderDetail_Access(t *testing.T) {
	store := newFakeOrderStore()
	owner := 5
	store.orders[1] = &models.Order{ID: 1, UserID: &owner, Status: models.OrderStatusPending}
	store.items[1] = []models.OrderItem{{OrderID: 1, ProductName: "Snack", Price: 1000, Qty: 1}}
	svc := &OrderService{Store: store}

	detail, err := svc.GetOrderDetail(context.Background(), models.RoleCustomer, owner, 1)
	require.NoError(t, err)
	assert.Len(t, detail.Items, 1)

	_, err = svc.GetOrderDetail(context.Background(), models.RoleCustomer, 99, 1)
	var bizErr *response.BizError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, http.StatusForbidden, bizErr.Code)

	// admin 看谁的都行
	_, err = svc.GetOrderDetail(context.Background(), models.RoleAdmin, 99, 1)
	require.NoError(t, err)

	_, err = svc.GetOrderDetail(context.Background(), models.RoleAdmin, 99, 404)
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Code)
}

func TestSetStatus(t *testing.T) {
	store := newFakeOrderStore()
	store.affected = 1
	svc := &OrderService{Store: store}

	err := svc.SetStatus(context.Background(), models.RoleCustomer, 1, models.OrderStatusDone)
	var bizErr *response.BizError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, http.StatusForbidden, bizErr.Code)
	assert.Empty(t, store.updatedStatus)

	err = svc.SetStatus(context.Background(), models.RoleStaff, 1, "refunded")
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, http.StatusBadRequest, bizErr.Code)
	assert.Empty(t, store.updatedStatus)

	require.NoError(t, svc.SetStatus(context.Background(), models.RoleStaff, 1, models.OrderStatusShipping))
	assert.Equal(t, models.OrderStatusShipping, store.updatedStatus[1])

	// 取消也是合法状态，且不做前驱检查
	require.NoError(t, svc.SetStatus(context.Background(), models.RoleAdmin, 1, models.OrderStatusCancelled))

	store.affected = 0
	err = svc.SetStatus(context.Background(), models.RoleAdmin, 404, models.OrderStatusDone)
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Code)
}

func TestListUserOrders_SelfOrAdmin(t *testing.T) {
	svc := &OrderService{Store: newFakeOrderStore()}

	_, err := svc.ListUserOrders(context.Background(), models.RoleCustomer, 3, 3)
	require.NoError(t, err)

	_, err = svc.ListUserOrders(context.Background(), models.RoleCustomer, 3, 4)
	var bizErr *response.BizError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, http.StatusForbidden, bizErr.Code)

	_, err = svc.ListUserOrders(context.Background(), models.RoleAdmin, 3, 4)
	require.NoError(t, err)
}
