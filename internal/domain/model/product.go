package model

import "time"

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UUID        string    `gorm:"column:uuid;type:varchar(36);uniqueIndex;not null" json:"uuid"`
	ShortName   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"short_name"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:varchar(300)" json:"description"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Available   bool      `gorm:"not null" json:"available"`
	Images      []Image   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// 商品画像
// product_idがNULLのものは孤児（掃除対象）
type Image struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UUID      string    `gorm:"column:uuid;type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Path      string    `gorm:"type:varchar(100);not null" json:"path"`
	ProductID *int64    `gorm:"index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
