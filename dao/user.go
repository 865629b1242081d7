package dao

import (
	"context"
	"errors"

	"SnackShop/models"
	"SnackShop/types"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	var user models.Users
	err := u.Db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) UpdatePassword(ctx context.Context, userID int, hash string) error {
	return u.Db.WithContext(ctx).Model(&models.Users{}).
		Where("id = ?", userID).
		UpdateColumn("password_hash", hash).Error
}

// UpdateProfile 只更新传了的字段
func (u *Users) UpdateProfile(ctx context.Context, userID int, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	return u.Db.WithContext(ctx).Model(&models.Users{}).
		Where("id = ?", userID).
		Updates(values).Error
}

// ListCustomers 按消费额排序，取消的订单不计入
func (u *Users) ListCustomers(ctx context.Context) ([]types.CustomerRow, error) {
	var rows []types.CustomerRow
	err := u.Db.WithContext(ctx).Raw(`
		SELECT u.id, u.email, u.full_name, u.phone, u.created_at,
		       COUNT(o.id) AS order_count,
		       COALESCE(SUM(o.total_price), 0) AS total_spent
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id AND o.status != 'cancelled'
		WHERE u.role = 'customer'
		GROUP BY u.id
		ORDER BY total_spent DESC`).Scan(&rows).Error
	return rows, err
}
