package model

import "github.com/shopspring/decimal"

// 1 id につき明細は1つ。順番は追加順。
type CartState struct {
	Entries []CartEntry `json:"cart"`
}

// Clone は明細をコピーした CartState を返す
func (s CartState) Clone() CartState {
	entries := make([]CartEntry, len(s.Entries))
	copy(entries, s.Entries)
	return CartState{Entries: entries}
}

// Find は id の明細を返す
func (s CartState) Find(id string) (CartEntry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return CartEntry{}, false
}

// Total は小計の合計（小数2桁に丸め）
func (s CartState) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Entries {
		total = total.Add(e.Subtotal())
	}
	return total.Round(2)
}

// Count は数量の合計
func (s CartState) Count() int {
	n := 0
	for _, e := range s.Entries {
		n += e.Quantity
	}
	return n
}

// IsEmpty
func (s CartState) IsEmpty() bool {
	return len(s.Entries) == 0
}
