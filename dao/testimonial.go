package dao

import (
	"context"

	"SnackShop/models"

	"gorm.io/gorm"
)

type Testimonial struct {
	Repo[models.Testimonial]
}

func NewTestimonial(db *gorm.DB) *Testimonial {
	return &Testimonial{
		Repo: NewRepo[models.Testimonial](db),
	}
}

func (t *Testimonial) List(ctx context.Context) ([]models.Testimonial, error) {
	var rows []models.Testimonial
	err := t.Db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}
