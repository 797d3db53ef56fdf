package usecase

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

func validateCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 3 || len(trimmed) > 100 {
		return "", NewAppError(KindValidation, "name must be 3-100 characters")
	}
	return trimmed, nil
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewAppError(KindInternal, "db error")
	}
	return categories, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, name string) (model.Category, error) {
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return model.Category{}, err
	}

	created, err := u.categoryRepo.Create(ctx, model.Category{Name: trimmed})
	if errors.Is(err, repo.ErrConflict) {
		return model.Category{}, NewAppError(KindConflict, "category name already exists")
	}
	if err != nil {
		return model.Category{}, NewAppError(KindInternal, "db error")
	}
	return created, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, id int64, name string) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewAppError(KindValidation, "invalid id")
	}
	trimmed, err := validateCategoryName(name)
	if err != nil {
		return model.Category{}, err
	}

	err = u.categoryRepo.Update(ctx, model.Category{ID: id, Name: trimmed})
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return model.Category{}, NewAppError(KindNotFound, "category not found")
	case errors.Is(err, repo.ErrConflict):
		return model.Category{}, NewAppError(KindConflict, "category name already exists")
	case err != nil:
		return model.Category{}, NewAppError(KindInternal, "db error")
	}

	return model.Category{ID: id, Name: trimmed}, nil
}

// Delete はカテゴリを消す。商品が紐付いていれば拒否。
func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewAppError(KindValidation, "invalid id")
	}

	err := u.categoryRepo.Delete(ctx, id)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NewAppError(KindNotFound, "category not found")
	case errors.Is(err, repo.ErrConflict):
		return NewAppError(KindConflict, "category has products attached")
	case err != nil:
		return NewAppError(KindInternal, "db error")
	}
	return nil
}
