package models

// Category 商品分类，id 是 slug（如 keo-banh）
type Category struct {
	ID    string `gorm:"primaryKey;type:varchar(50)" json:"id"`
	Name  string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Emoji string `gorm:"column:emoji;type:varchar(10)" json:"emoji"`
}

func (Category) TableName() string {
	return "categories"
}
