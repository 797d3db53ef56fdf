package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品。価格はDECIMAL(10,2)で保持する（floatは使わない）。
type Product struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock        int64           `gorm:"not null" json:"stock"`
	StockMinimum int64           `gorm:"not null;column:stock_minimum" json:"stock_minimum"`
	CategoryID   int64           `gorm:"not null;index" json:"category_id"`
	ImagePath    string          `gorm:"type:varchar(100)" json:"image_path"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// 一覧でカテゴリ名を出すための関連
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
