package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderLineRepository interface {
	// 全行を1バッチで入れる（周囲のトランザクションと運命共同体）
	CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLine, error)
}
