package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	// email重複はErrConflict
	Create(ctx context.Context, u model.User) (model.User, error)
}
