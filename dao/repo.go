package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 各 DAO 共用的基础仓储
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

func (r *Repo[T]) FindByID(ctx context.Context, id any) (*T, error) {
	var m T
	if err := r.Db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo[T]) UpdateByID(ctx context.Context, id any, values map[string]any) (int64, error) {
	var m T
	res := r.Db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(values)
	return res.RowsAffected, res.Error
}
