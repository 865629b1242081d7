package handler

import (
	"SnackShop/config"
	appctx "SnackShop/pkg/context"
	"SnackShop/pkg/response"
	"SnackShop/service"

	"github.com/gin-gonic/gin"
)

type Category struct {
	Config         *config.Config
	ProductService service.IProductService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	r.GET("/categories", appctx.Wrap(h.List))
}

func (h *Category) List(c *gin.Context) error {
	cats, err := h.ProductService.Categories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, cats)
	return nil
}
