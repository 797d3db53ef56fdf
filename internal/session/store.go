package session

import (
	"context"

	"storefront/internal/domain/model"
)

// Store はセッションIDをキーにカート行を読み書きする約束。
// 中身はただのkey/value。寿命はブラウザセッション側の都合で決まる。
// 同一セッションへの同時書き込みは後勝ち（保護しない）。
type Store interface {
	// 未初期化のセッションは空カートとして返す
	Get(ctx context.Context, sid string) ([]model.CartLine, error)
	Set(ctx context.Context, sid string, lines []model.CartLine) error
}
