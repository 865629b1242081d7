package models

import "time"

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

type Users struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`
	Phone        string    `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Address      string    `gorm:"column:address;type:varchar(500)" json:"address"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Users) TableName() string {
	return "users"
}
