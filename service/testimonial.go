package service

import (
	"context"

	"SnackShop/dao"
	"SnackShop/models"
	"SnackShop/pkg/response"
	"SnackShop/types"
)

type TestimonialService struct {
	TestimonialDAO *dao.Testimonial
}

var _ ITestimonialService = (*TestimonialService)(nil)

type ITestimonialService interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Create(ctx context.Context, req *types.CreateTestimonialRequest) (int, error)
}

func (s *TestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	return s.TestimonialDAO.List(ctx)
}

func (s *TestimonialService) Create(ctx context.Context, req *types.CreateTestimonialRequest) (int, error) {
	if req.Name == "" || req.Comment == "" || req.Product == "" {
		return 0, response.BadRequest("name, comment and product are required")
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = "👤"
	}
	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	t := &models.Testimonial{
		Name:    req.Name,
		Avatar:  avatar,
		Rating:  rating,
		Comment: req.Comment,
		Product: req.Product,
	}
	if err := s.TestimonialDAO.Create(ctx, t); err != nil {
		return 0, err
	}
	return t.ID, nil
}
