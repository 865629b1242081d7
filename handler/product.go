package handler

import (
	"strconv"

	"SnackShop/config"
	appctx "SnackShop/pkg/context"
	"SnackShop/pkg/response"
	"SnackShop/service"
	"SnackShop/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	Config         *config.Config
	ProductService service.IProductService
}

func (h *Product) RegisterRouter(r gin.IRouter) {
	products := r.Group("/products")
	products.GET("", appctx.Wrap(h.List))
	products.GET("/:id", appctx.Wrap(h.Detail))
}

func (h *Product) List(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "16"))

	f := &types.ProductFilter{
		Cat:         c.Query("cat"),
		Search:      c.Query("search"),
		Sort:        c.Query("sort"),
		Page:        page,
		Limit:       limit,
		HasDiscount: c.Query("has_discount") == "1",
	}
	if v, err := strconv.Atoi(c.Query("price_min")); err == nil {
		f.PriceMin = &v
	}
	if v, err := strconv.Atoi(c.Query("price_max")); err == nil {
		f.PriceMax = &v
	}

	rows, total, err := h.ProductService.List(c.Request.Context(), f)
	if err != nil {
		return err
	}
	response.Paged(c, rows, response.NewPagination(total, f.Page, f.Limit))
	return nil
}

func (h *Product) Detail(c *gin.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("invalid product id")
	}

	product, err := h.ProductService.Detail(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}
