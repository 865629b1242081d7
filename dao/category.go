package dao

import (
	"context"

	"SnackShop/models"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{
		Repo: NewRepo[models.Category](db),
	}
}

func (c *Category) List(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := c.Db.WithContext(ctx).Order("id").Find(&cats).Error
	return cats, err
}

// ListReal 后台商品表单用，排除 "all" 伪分类
func (c *Category) ListReal(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := c.Db.WithContext(ctx).Where("id != ?", "all").Order("name").Find(&cats).Error
	return cats, err
}
