package handler

import (
	"strconv"

	"SnackShop/config"
	"SnackShop/middleware"
	appctx "SnackShop/pkg/context"
	"SnackShop/pkg/response"
	"SnackShop/service"
	"SnackShop/types"

	"github.com/gin-gonic/gin"
)

type Wishlist struct {
	Config          *config.Config
	WishlistService service.IWishlistService
}

func (h *Wishlist) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	wishlist := r.Group("/wishlist")
	wishlist.Use(authorize)
	wishlist.GET("", appctx.Wrap(h.List))
	wishlist.GET("/ids", appctx.Wrap(h.IDs))
	wishlist.POST("/:productId", appctx.Wrap(h.Toggle))
	wishlist.DELETE("/:productId", appctx.Wrap(h.Remove))
}

func (h *Wishlist) List(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}

	rows, err := h.WishlistService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, rows)
	return nil
}

func (h *Wishlist) IDs(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}

	ids, err := h.WishlistService.IDs(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, ids)
	return nil
}

func (h *Wishlist) Toggle(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest("invalid product id")
	}

	added, err := h.WishlistService.Toggle(c.Request.Context(), userID, productID)
	if err != nil {
		return err
	}
	response.Success(c, types.ToggleWishlistResponse{Added: added})
	return nil
}

func (h *Wishlist) Remove(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest("invalid product id")
	}

	if err := h.WishlistService.Remove(c.Request.Context(), userID, productID); err != nil {
		return err
	}
	response.Message(c, "removed from wishlist")
	return nil
}
