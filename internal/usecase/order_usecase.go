package usecase

import (
	"context"
	"errors"
	"time"

	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderUsecase は確定済み注文の照会。
type OrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderLineRepo repo.OrderLineRepository
	productRepo   repo.ProductRepository
}

func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	orderLineRepo repo.OrderLineRepository,
	productRepo repo.ProductRepository,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:     orderRepo,
		orderLineRepo: orderLineRepo,
		productRepo:   productRepo,
	}
}

type OrderSummary struct {
	ID        int64           `json:"id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

type OrderLineDetail struct {
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Quantity        int64           `json:"quantity"`
	UnitPriceAtSale decimal.Decimal `json:"unit_price_at_sale"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

type OrderDetail struct {
	ID        int64             `json:"id"`
	Status    string            `json:"status"`
	Total     decimal.Decimal   `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderLineDetail `json:"items"`
}

// ListMine は自分の注文を新しい順で返す。
func (u *OrderUsecase) ListMine(ctx context.Context, userID int64) ([]OrderSummary, error) {
	if userID <= 0 {
		return nil, NewAppError(KindUnauthenticated, "login required")
	}

	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewAppError(KindInternal, "db error")
	}

	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderSummary{
			ID:        o.ID,
			Status:    string(o.Status),
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
		})
	}
	return out, nil
}

// DetailMine は自分の注文1件を明細・商品名込みで返す。
// 他人の注文は存在しない扱いにする（存在を漏らさない）。
func (u *OrderUsecase) DetailMine(ctx context.Context, userID int64, orderID int64) (OrderDetail, error) {
	if userID <= 0 {
		return OrderDetail{}, NewAppError(KindUnauthenticated, "login required")
	}
	if orderID <= 0 {
		return OrderDetail{}, NewAppError(KindValidation, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderDetail{}, NewAppError(KindNotFound, "order not found")
	}
	if err != nil {
		return OrderDetail{}, NewAppError(KindInternal, "db error")
	}
	if o.UserID != userID {
		// 所有者以外にはnot foundと同じ顔をする
		return OrderDetail{}, NewAppError(KindNotFound, "order not found")
	}

	lines, err := u.orderLineRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderDetail{}, NewAppError(KindInternal, "db error")
	}

	// 商品名は読み取り時にカタログから引く。
	// 参照付き商品の削除は拒否しているので、ここで消えていることはない
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	products, err := u.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return OrderDetail{}, NewAppError(KindInternal, "db error")
	}
	nameByID := make(map[int64]string, len(products))
	for _, p := range products {
		nameByID[p.ID] = p.Name
	}

	items := make([]OrderLineDetail, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderLineDetail{
			ProductID:       l.ProductID,
			ProductName:     nameByID[l.ProductID],
			Quantity:        l.Quantity,
			UnitPriceAtSale: l.UnitPriceAtSale,
			Subtotal:        l.UnitPriceAtSale.Mul(decimal.NewFromInt(l.Quantity)),
		})
	}

	return OrderDetail{
		ID:        o.ID,
		Status:    string(o.Status),
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     items,
	}, nil
}
