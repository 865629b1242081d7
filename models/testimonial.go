package models

import "time"

type Testimonial struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Avatar    string    `gorm:"column:avatar;type:varchar(10);default:'👤'" json:"avatar"`
	Rating    int       `gorm:"column:rating;type:tinyint;not null;default:5" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text;not null" json:"comment"`
	Product   string    `gorm:"column:product;type:varchar(255);not null" json:"product"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
