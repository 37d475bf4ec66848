package model

import "github.com/shopspring/decimal"

// カートの明細
// 表示用の情報と価格は追加時点のものを保持する。
type CartEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       Price  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Subtotal は price * quantity
func (e CartEntry) Subtotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}
