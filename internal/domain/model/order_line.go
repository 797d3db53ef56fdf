package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。unit_price_at_saleは確定時点の価格を凍結する。
// 商品側の価格がその後変わっても、この行は書き換えない。
type OrderLine struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64           `gorm:"not null;index" json:"order_id"`
	ProductID       int64           `gorm:"not null;index" json:"product_id"`
	Quantity        int64           `gorm:"not null" json:"quantity"`
	UnitPriceAtSale decimal.Decimal `gorm:"type:decimal(10,2);not null;column:unit_price_at_sale" json:"unit_price_at_sale"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
