package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CategoryRepository interface {
	// name昇順
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	// name重複はErrConflict
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	// 商品が紐付いていればErrConflict
	Delete(ctx context.Context, id int64) error
}
