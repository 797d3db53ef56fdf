package usecase

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/session"

	"github.com/shopspring/decimal"
)

// CartUsecase はセッションカートの業務ロジック。
// カート行は (product_id, quantity) のペアで、同じ商品は1行にまとめる。
type CartUsecase struct {
	store       session.Store
	productRepo repo.ProductRepository
}

func NewCartUsecase(store session.Store, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		store:       store,
		productRepo: productRepo,
	}
}

// カタログと突き合わせた表示用の1行
type CartItemView struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ImagePath string          `json:"image_path"`
}

type CartView struct {
	Items []CartItemView  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

// View はカートを現在のカタログ価格で突き合わせて返す。
func (u *CartUsecase) View(ctx context.Context, sid string) (CartView, error) {
	lines, err := u.store.Get(ctx, sid)
	if err != nil {
		return CartView{}, NewAppError(KindInternal, "session error")
	}

	return u.Reconcile(ctx, lines)
}

// Add はカートに追加する。同一商品は数量加算。
// 商品が存在しない場合はカートを触らずにNotFoundを返す。
func (u *CartUsecase) Add(ctx context.Context, sid string, in AddCartInput) (CartView, error) {
	if in.ProductID <= 0 {
		return CartView{}, NewAppError(KindValidation, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartView{}, NewAppError(KindValidation, "invalid quantity")
	}

	// 商品の存在チェック。追加時点の価格を表示キャッシュとして持つ
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartView{}, NewAppError(KindNotFound, "product not found")
	}
	if err != nil {
		return CartView{}, NewAppError(KindInternal, "db error")
	}

	lines, err := u.store.Get(ctx, sid)
	if err != nil {
		return CartView{}, NewAppError(KindInternal, "session error")
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == in.ProductID {
			lines[i].Quantity += in.Quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, model.CartLine{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: p.Price,
		})
	}

	if err := u.store.Set(ctx, sid, lines); err != nil {
		return CartView{}, NewAppError(KindInternal, "session error")
	}

	return u.Reconcile(ctx, lines)
}

// Remove は指定商品の行を落とす。無い商品を指定されても何もしない。
func (u *CartUsecase) Remove(ctx context.Context, sid string, productID int64) (CartView, error) {
	if productID <= 0 {
		return CartView{}, NewAppError(KindValidation, "invalid product_id")
	}

	lines, err := u.store.Get(ctx, sid)
	if err != nil {
		return CartView{}, NewAppError(KindInternal, "session error")
	}

	kept := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}

	if err := u.store.Set(ctx, sid, kept); err != nil {
		return CartView{}, NewAppError(KindInternal, "session error")
	}

	return u.Reconcile(ctx, kept)
}

// Clear はカートを空にする。チェックアウト成功後にだけ呼ぶ。
func (u *CartUsecase) Clear(ctx context.Context, sid string) error {
	if err := u.store.Set(ctx, sid, []model.CartLine{}); err != nil {
		return NewAppError(KindInternal, "session error")
	}
	return nil
}

// Reconcile はカート行を現在のカタログとJOINして、表示用の明細と合計を作る。
// カタログから消えた商品の行は結果から落とし、合計にも入れない。
// 読み取り専用で、カートもカタログも書き換えない。
func (u *CartUsecase) Reconcile(ctx context.Context, lines []model.CartLine) (CartView, error) {
	view := CartView{Items: []CartItemView{}, Total: decimal.Zero}
	if len(lines) == 0 {
		return view, nil
	}

	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	products, err := u.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return CartView{}, NewAppError(KindInternal, "db error")
	}

	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			// 消えた商品は表示から落とす
			continue
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(l.Quantity))
		view.Items = append(view.Items, CartItemView{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  l.Quantity,
			Subtotal:  subtotal,
			ImagePath: p.ImagePath,
		})
		view.Total = view.Total.Add(subtotal)
	}

	return view, nil
}
