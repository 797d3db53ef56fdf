package model

import "github.com/shopspring/decimal"

// カート1行。セッションストアにJSONで保存するだけで、DBには置かない。
// UnitPriceは追加時点の表示用キャッシュ。チェックアウトはこの値を信用せず、
// トランザクション内で必ずカタログから価格を引き直す。
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
