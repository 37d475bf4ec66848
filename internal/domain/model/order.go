package model

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// POST /v1/order のpayload兼レスポンス
type Order struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customer_id"`
	Contact          string         `json:"contact"`
	Address          string         `json:"address"`
	Status           OrderStatus    `json:"status"`
	ProductOrderList []OrderProduct `json:"product_order_list"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

// 一覧検索
type OrderQuery struct {
	SearchWord string
	Page       int
	PerPage    int
}

type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        int    `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          int    `json:"to"`
	Total       int    `json:"total"`
}

type OrdersResp struct {
	Orders []Order  `json:"orders"`
	Meta   PageMeta `json:"meta"`
}
