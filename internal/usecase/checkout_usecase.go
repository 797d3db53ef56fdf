package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/session"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutUsecase はカートを注文に変換する。
// 書き込みはすべて1トランザクション。カートのクリアはcommit成功後にだけ行う。
// commit前にクリアすると、途中クラッシュで「買えていないのにカートだけ消える」ため。
type CheckoutUsecase struct {
	tx     repo.TransactionManager
	store  session.Store
	logger *zap.Logger

	// チェックアウト時に在庫を引き当てるかどうか
	decrementStock bool
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	store session.Store,
	logger *zap.Logger,
	decrementStock bool,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:             tx,
		store:          store,
		logger:         logger,
		decrementStock: decrementStock,
	}
}

type CheckoutLineOutput struct {
	ProductID       int64           `json:"product_id"`
	Name            string          `json:"name"`
	Quantity        int64           `json:"quantity"`
	UnitPriceAtSale decimal.Decimal `json:"unit_price_at_sale"`
}

type CheckoutOutput struct {
	OrderID   int64                `json:"order_id"`
	Status    string               `json:"status"`
	Total     decimal.Decimal      `json:"total"`
	CreatedAt time.Time            `json:"created_at"`
	Items     []CheckoutLineOutput `json:"items"`
}

// PlaceOrder はチェックアウト本体。
//
// 前提条件（順にチェックして最初の失敗で打ち切り、副作用なし）:
//  1. 認証済みであること
//  2. カートが空でないこと
//
// トランザクション内:
//  1. カート内の全商品の価格をカタログから引き直す（表示キャッシュは使わない）。
//     商品が消えていたらチェックアウト全体を失敗させる
//  2. total=0 / PENDING で注文ヘッダを作成してIDを得る
//  3. 明細を組み立て、unit_price_at_saleに引き直した価格を凍結して合計を積む
//  4. （ポリシー有効時）在庫を条件付きで減算。足りなければ全体を失敗させる
//  5. 明細を一括INSERT
//  6. ヘッダのtotalを積み上げた値で更新
//
// commit成功後にだけカートを空にする。途中で何か失敗したら全ロールバックし、
// カートは触らないので安全にリトライできる。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, userID int64, sid string) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewAppError(KindUnauthenticated, "login required")
	}

	lines, err := u.store.Get(ctx, sid)
	if err != nil {
		return CheckoutOutput{}, NewAppError(KindInternal, "session error")
	}
	if len(lines) == 0 {
		return CheckoutOutput{}, NewAppError(KindEmptyCart, "cart is empty")
	}

	var out CheckoutOutput

	txErr := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// トランザクション内で価格を引き直す
		ids := make([]int64, 0, len(lines))
		for _, l := range lines {
			ids = append(ids, l.ProductID)
		}

		products, err := r.Products().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}

		byID := make(map[int64]model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		// 消えた商品があれば黙って落とさずに失敗させる
		for _, l := range lines {
			if _, ok := byID[l.ProductID]; !ok {
				return NewAppError(KindConflict, "a product in your cart is no longer available")
			}
		}

		// ヘッダを仮合計0で作成
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID: userID,
			Status: model.OrderStatusPending,
			Total:  decimal.Zero,
		})
		if err != nil {
			return err
		}

		orderLines := make([]model.OrderLine, 0, len(lines))
		outItems := make([]CheckoutLineOutput, 0, len(lines))
		total := decimal.Zero

		for _, l := range lines {
			p := byID[l.ProductID]

			if u.decrementStock {
				ok, err := r.Inventory().DecreaseStockIfEnough(ctx, l.ProductID, l.Quantity)
				if err != nil {
					return err
				}
				if !ok {
					return NewAppError(KindConflict, "out of stock")
				}
			}

			// 価格を凍結
			orderLines = append(orderLines, model.OrderLine{
				ProductID:       l.ProductID,
				Quantity:        l.Quantity,
				UnitPriceAtSale: p.Price,
			})
			outItems = append(outItems, CheckoutLineOutput{
				ProductID:       l.ProductID,
				Name:            p.Name,
				Quantity:        l.Quantity,
				UnitPriceAtSale: p.Price,
			})

			total = total.Add(p.Price.Mul(decimal.NewFromInt(l.Quantity)))
		}

		if err := r.OrderLines().CreateBulk(ctx, orderID, orderLines); err != nil {
			return err
		}

		if err := r.Orders().UpdateTotal(ctx, orderID, total); err != nil {
			return err
		}

		out = CheckoutOutput{
			OrderID:   orderID,
			Status:    string(model.OrderStatusPending),
			Total:     total,
			CreatedAt: time.Now(),
			Items:     outItems,
		}
		return nil
	})

	if txErr != nil {
		if _, ok := AsAppError(txErr); ok {
			return CheckoutOutput{}, txErr
		}
		// 内部原因はログにだけ残し、利用者には「リトライしてください」だけ返す
		u.logger.Error("checkout transaction failed",
			zap.Int64("user_id", userID),
			zap.Error(txErr),
		)
		return CheckoutOutput{}, NewAppError(KindTxFailure, "checkout failed, please retry")
	}

	// commitが成功したのでカートを空にする。
	// ここで失敗しても注文は確定済みなので、警告ログだけ残して成功を返す
	if err := u.store.Set(ctx, sid, []model.CartLine{}); err != nil {
		u.logger.Warn("cart clear after checkout failed",
			zap.Int64("user_id", userID),
			zap.Int64("order_id", out.OrderID),
			zap.Error(err),
		)
	}

	return out, nil
}
