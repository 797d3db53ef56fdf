package repository

import (
	"context"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	// ヘッダを作成して生成IDを返す
	Create(ctx context.Context, order model.Order) (int64, error)
	// 明細確定後に合計を書き戻す
	UpdateTotal(ctx context.Context, orderID int64, total decimal.Decimal) error
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 新しい順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
