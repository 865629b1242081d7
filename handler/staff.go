package handler

import (
	"strconv"

	"SnackShop/config"
	"SnackShop/middleware"
	appctx "SnackShop/pkg/context"
	"SnackShop/pkg/response"
	"SnackShop/pkg/upload"
	"SnackShop/service"
	"SnackShop/types"

	"github.com/gin-gonic/gin"
)

type Staff struct {
	Config         *config.Config
	StaffService   service.IStaffService
	OrderService   service.IOrderService
	ProductService service.IProductService
	Storage        *upload.Storage
}

func (h *Staff) RegisterRouter(r gin.IRouter) {
	staff := r.Group("/staff")
	staff.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)), middleware.RequireStaff())

	staff.GET("/dashboard", appctx.Wrap(h.Dashboard))
	staff.GET("/orders", appctx.Wrap(h.ListOrders))
	staff.GET("/orders/:id", appctx.Wrap(h.OrderDetail))
	staff.PATCH("/orders/:id/status", appctx.Wrap(h.UpdateOrderStatus))
	staff.GET("/products", appctx.Wrap(h.ListProducts))
	staff.POST("/products", appctx.Wrap(h.CreateProduct))
	staff.PUT("/products/:id", appctx.Wrap(h.UpdateProduct))
	staff.DELETE("/products/:id", appctx.Wrap(h.DeleteProduct))
	staff.GET("/customers", appctx.Wrap(h.ListCustomers))
	staff.GET("/categories", appctx.Wrap(h.ListCategories))
}

func (h *Staff) Dashboard(c *gin.Context) error {
	d, err := h.StaffService.GetDashboard(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, d)
	return nil
}

func (h *Staff) ListOrders(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	f := &types.OrderListFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	rows, total, err := h.StaffService.ListOrders(c.Request.Context(), f)
	if err != nil {
		return err
	}
	response.Paged(c, rows, response.NewPagination(total, f.Page, f.Limit))
	return nil
}

func (h *Staff) OrderDetail(c *gin.Context) error {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("invalid order id")
	}

	detail, err := h.StaffService.GetOrderDetail(c.Request.Context(), orderID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Staff) UpdateOrderStatus(c *gin.Context) error {
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
	// 状态变了，聚合指标缓存作废
	h.StaffService.InvalidateDashboard(c.Request.Context())
	response.Message(c, "status updated: "+req.Status)
	return nil
}

func (h *Staff) ListProducts(c *gin.Context) error {
	rows, err := h.StaffService.ListProducts(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, rows)
	return nil
}

// CreateProduct multipart 表单，图片可选
func (h *Staff) CreateProduct(c *gin.Context) error {
	req := types.CreateProductRequest{
		Name:        c.PostForm("name"),
		CategoryID:  c.PostForm("category_id"),
		Description: c.PostForm("description"),
		Emoji:       c.PostForm("emoji"),
		Color:       c.PostForm("color"),
	}
	req.Price, _ = strconv.Atoi(c.PostForm("price"))
	if v := c.PostForm("original_price"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.OriginalPrice = &n
		}
	}
	if v := c.PostForm("badge"); v != "" {
		req.Badge = &v
	}
	if v := c.PostForm("stock"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Stock = &n
		}
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.Storage.SaveProductImage(c, file)
		if err != nil {
			return response.BadRequest(err.Error())
		}
		imageURL = &url
	}

	id, err := h.ProductService.Create(c.Request.Context(), &req, imageURL)
	if err != nil {
		return err
	}
	response.Created(c, "product created", gin.H{"id": id, "image_url": imageURL})
	return nil
}

// UpdateProduct 表单里没传的字段保持原值
func (h *Staff) UpdateProduct(c *gin.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("invalid product id")
	}

	var req types.UpdateProductRequest
	if v, ok := c.GetPostForm("name"); ok && v != "" {
		req.Name = &v
	}
	if v, ok := c.GetPostForm("category_id"); ok && v != "" {
		req.CategoryID = &v
	}
	if v, ok := c.GetPostForm("price"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Price = &n
		}
	}
	if v, ok := c.GetPostForm("original_price"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.OriginalPrice = &n
		}
	}
	if v, ok := c.GetPostForm("description"); ok && v != "" {
		req.Description = &v
	}
	if v, ok := c.GetPostForm("emoji"); ok && v != "" {
		req.Emoji = &v
	}
	if v, ok := c.GetPostForm("color"); ok && v != "" {
		req.Color = &v
	}
	if v, ok := c.GetPostForm("badge"); ok && v != "" {
		req.Badge = &v
	}
	if v, ok := c.GetPostForm("is_active"); ok && v != "" {
		b := v == "1" || v == "true"
		req.IsActive = &b
	}
	if v, ok := c.GetPostForm("stock"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Stock = &n
		}
	}

	var imageURL, oldImageURL *string
	if file, err := c.FormFile("image"); err == nil {
		// 换新图前先记下旧图，更新成功后再清
		if old, err := h.ProductService.Detail(c.Request.Context(), id); err == nil {
			oldImageURL = old.ImageURL
		}
		url, err := h.Storage.SaveProductImage(c, file)
		if err != nil {
			return response.BadRequest(err.Error())
		}
		imageURL = &url
	}

	if err := h.ProductService.Update(c.Request.Context(), id, &req, imageURL); err != nil {
		return err
	}
	if imageURL != nil && oldImageURL != nil {
		h.Storage.RemoveByURL(*oldImageURL)
	}
	response.Success(c, gin.H{"image_url": imageURL})
	return nil
}

// DeleteProduct 默认下架（软删），?hard=true 才真删并清图片
func (h *Staff) DeleteProduct(c *gin.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("invalid product id")
	}

	if c.Query("hard") != "true" {
		if err := h.ProductService.SoftDelete(c.Request.Context(), id); err != nil {
			return err
		}
		response.Message(c, "product deactivated")
		return nil
	}

	imageURL, err := h.StaffService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		return err
	}
	if imageURL != nil {
		h.Storage.RemoveByURL(*imageURL)
	}
	response.Message(c, "product deleted")
	return nil
}

func (h *Staff) ListCustomers(c *gin.Context) error {
	rows, err := h.StaffService.ListCustomers(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, rows)
	return nil
}

func (h *Staff) ListCategories(c *gin.Context) error {
	cats, err := h.StaffService.ListCategories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, cats)
	return nil
}
