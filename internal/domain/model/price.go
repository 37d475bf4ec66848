package model

import "github.com/shopspring/decimal"

// Price は JSON では引用符なしの数値として読み書きする金額
// 読み込みは decimal に任せるので "10.5" のような文字列も受け付ける。
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// MustPrice は固定値用。不正な文字列は panic する
func MustPrice(s string) Price {
	return Price{Decimal: decimal.RequireFromString(s)}
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}
