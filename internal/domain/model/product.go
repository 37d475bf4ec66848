package model

import "time"

type Image struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	RefID     string    `json:"ref_id"`
	RefType   string    `json:"ref_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       Price      `json:"price"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Images      []Image    `json:"images"`
	Categories  []Category `json:"categories"`
}

// CartEntry は追加時点の表示情報で明細を作る
func (p Product) CartEntry(quantity int) CartEntry {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0].URL
	}
	return CartEntry{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       image,
		Price:       p.Price,
		Quantity:    quantity,
	}
}

// GET /v1/products の検索条件
type ProductQuery struct {
	SearchWord string
	Page       int
	PerPage    int
}

type ProductsResp struct {
	Page      int       `json:"page"`
	PerPage   int       `json:"per_page"`
	TotalPage int       `json:"total_page"`
	TotalRows int       `json:"total_rows"`
	Products  []Product `json:"products"`
}
