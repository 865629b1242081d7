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

type Review struct {
	Config        *config.Config
	ReviewService service.IReviewService
}

func (h *Review) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	reviews := r.Group("/reviews")
	reviews.GET("", appctx.Wrap(h.List))
	reviews.POST("", authorize, appctx.Wrap(h.Submit))
}

func (h *Review) List(c *gin.Context) error {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil {
		return response.BadRequest("product_id is required")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	rows, total, err := h.ReviewService.List(c.Request.Context(), productID, page, limit)
	if err != nil {
		return err
	}
	response.Paged(c, rows, response.NewPagination(total, page, limit))
	return nil
}

func (h *Review) Submit(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("invalid request body")
	}

	userName := c.GetString(appctx.CtxFullName)
	if err := h.ReviewService.Submit(c.Request.Context(), userID, userName, &req); err != nil {
		return err
	}
	response.Created(c, "thanks for your review!", nil)
	return nil
}
