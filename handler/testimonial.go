package handler

import (
	appctx "SnackShop/pkg/context"
	"SnackShop/pkg/response"
	"SnackShop/service"
	"SnackShop/types"

	"github.com/gin-gonic/gin"
)

type Testimonial struct {
	TestimonialService service.ITestimonialService
}

func (h *Testimonial) RegisterRouter(r gin.IRouter) {
	r.GET("/testimonials", appctx.Wrap(h.List))
	r.POST("/testimonials", appctx.Wrap(h.Create))
}

func (h *Testimonial) List(c *gin.Context) error {
	rows, err := h.TestimonialService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, rows)
	return nil
}

func (h *Testimonial) Create(c *gin.Context) error {
	var req types.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("invalid request body")
	}

	id, err := h.TestimonialService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, "testimonial submitted", gin.H{"id": id})
	return nil
}
