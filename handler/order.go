package handler

import (
	"strconv"

	"SnackShop/config"
	"SnackShop/middleware"
	"SnackShop/models"
	appctx "SnackShop/pkg/context"
	"SnackShop/pkg/response"
	"SnackShop/service"
	"SnackShop/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	orders := r.Group("/orders")
	orders.POST("", appctx.Wrap(h.PlaceOrder)) // 允许游客下单
	orders.GET("", authorize, appctx.Wrap(h.ListOrders))
	orders.GET("/:id", authorize, appctx.Wrap(h.GetOrderDetail))
	orders.PATCH("/:id/status", authorize, appctx.Wrap(h.UpdateStatus))
	orders.GET("/user/:userId", authorize, appctx.Wrap(h.ListUserOrders))
}

func (h *Order) PlaceOrder(c *gin.Context) error {
	var req types.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("invalid request body")
	}

	resp, _, err := h.OrderService.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, "order placed", resp)
	return nil
}

func (h *Order) ListOrders(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	f := &types.OrderListFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	rows, err := h.OrderService.ListOrders(c.Request.Context(), appctx.GetRole(c), userID, f)
	if err != nil {
		return err
	}
	response.Success(c, rows)
	return nil
}

func (h *Order) GetOrderDetail(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("invalid order id")
	}

	detail, err := h.OrderService.GetOrderDetail(c.Request.Context(), appctx.GetRole(c), userID, orderID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// UpdateStatus 客户侧入口只开放给 admin，后台入口见 staff handler
func (h *Order) UpdateStatus(c *gin.Context) error {
	if appctx.GetRole(c) != models.RoleAdmin {
		return response.Forbidden("only admin can update order status")
	}
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("invalid order id")
	}

	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("invalid request body")
	}

	if err := h.OrderService.SetStatus(c.Request.Context(), appctx.GetRole(c), orderID, req.Status); err != nil {
		return err
	}
	response.Message(c, "status updated: "+req.Status)
	return nil
}

func (h *Order) ListUserOrders(c *gin.Context) error {
	actorID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return response.BadRequest("invalid user id")
	}

	rows, err := h.OrderService.ListUserOrders(c.Request.Context(), appctx.GetRole(c), actorID, userID)
	if err != nil {
		return err
	}
	response.Success(c, rows)
	return nil
}
