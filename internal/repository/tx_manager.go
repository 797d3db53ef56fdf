package repository

import "context"

// トランザクション内で使えるrepo一式
type TxRepos interface {
	Products() ProductRepository
	Orders() OrderRepository
	OrderLines() OrderLineRepository
	Inventory() InventoryRepository
}

// Usecaseからbegin/commit/rollbackを隠す。
// fnがエラーを返したら全ロールバック。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
