package model

// 注文の明細（注文時点の数量と価格）
type OrderProduct struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
	Price     Price  `json:"price"`
}

// OrderProductsFromCart はカートの順番のまま明細に変換する
func OrderProductsFromCart(s CartState) []OrderProduct {
	out := make([]OrderProduct, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, OrderProduct{
			ProductID: e.ID,
			Qty:       e.Quantity,
			Price:     e.Price,
		})
	}
	return out
}
