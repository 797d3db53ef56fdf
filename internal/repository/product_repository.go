package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")
	// 一意制約・外部キー制約の違反
	ErrConflict = errors.New("conflict")
)

// 商品カタログの永続化だけを約束。チェックアウト側からは読み取り専用で使う。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// idsに無い商品は結果から抜ける（エラーにはしない）
	FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
	// 注文明細から参照されている件数（参照付き商品の削除拒否に使う）
	CountOrderLineRefs(ctx context.Context, id int64) (int64, error)
}
