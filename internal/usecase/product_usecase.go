package usecase

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductUsecase は公開カタログと管理者の商品CRUD。
type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
}

func NewProductUsecase(productRepo repo.ProductRepository, categoryRepo repo.CategoryRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

type ProductInput struct {
	Name         string
	Price        decimal.Decimal
	Stock        int64
	StockMinimum int64
	CategoryID   int64
	ImagePath    string
}

// 登録/更新共通のバリデーション
func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewAppError(KindValidation, "name is required")
	}
	if !in.Price.IsPositive() {
		return NewAppError(KindValidation, "price must be greater than zero")
	}
	if in.Stock < 0 {
		return NewAppError(KindValidation, "stock must not be negative")
	}
	if in.StockMinimum < 0 {
		return NewAppError(KindValidation, "stock_minimum must not be negative")
	}
	// 最低在庫は現在庫以下（書き込み時の検証ルール）
	if in.StockMinimum > in.Stock {
		return NewAppError(KindValidation, "stock_minimum must not exceed stock")
	}
	if in.CategoryID <= 0 {
		return NewAppError(KindValidation, "invalid category_id")
	}
	return nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, NewAppError(KindInternal, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewAppError(KindValidation, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewAppError(KindNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewAppError(KindInternal, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	// カテゴリの存在チェック
	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewAppError(KindValidation, "category not found")
		}
		return model.Product{}, NewAppError(KindInternal, "db error")
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		Stock:        in.Stock,
		StockMinimum: in.StockMinimum,
		CategoryID:   in.CategoryID,
		ImagePath:    in.ImagePath,
	})
	if err != nil {
		return model.Product{}, NewAppError(KindInternal, "db error")
	}
	return created, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewAppError(KindValidation, "invalid id")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewAppError(KindValidation, "category not found")
		}
		return model.Product{}, NewAppError(KindInternal, "db error")
	}

	current, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewAppError(KindNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewAppError(KindInternal, "db error")
	}

	imagePath := in.ImagePath
	if imagePath == "" {
		// 画像未指定なら既存のパスを残す
		imagePath = current.ImagePath
	}

	updated := model.Product{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		Stock:        in.Stock,
		StockMinimum: in.StockMinimum,
		CategoryID:   in.CategoryID,
		ImagePath:    imagePath,
	}
	if err := u.productRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewAppError(KindNotFound, "product not found")
		}
		return model.Product{}, NewAppError(KindInternal, "db error")
	}

	return updated, nil
}

// Delete は商品を消す。注文明細から参照されている商品は消させない。
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewAppError(KindValidation, "invalid id")
	}

	refs, err := u.productRepo.CountOrderLineRefs(ctx, id)
	if err != nil {
		return NewAppError(KindInternal, "db error")
	}
	if refs > 0 {
		return NewAppError(KindConflict, "product is referenced by existing orders")
	}

	if err := u.productRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return NewAppError(KindNotFound, "product not found")
		case errors.Is(err, repo.ErrConflict):
			// カウントと削除の間に注文が入ったケース。DBの制約が最後の砦
			return NewAppError(KindConflict, "product is referenced by existing orders")
		default:
			return NewAppError(KindInternal, "db error")
		}
	}
	return nil
}
