package model

// カートの明細。セッション単位でJSON配列として保存される。
// Quantity は常に1以上（0になった明細は配列から消える）。
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Kobo   `json:"price"`
	Quantity int64  `json:"quantity"`
	ImageURL string `json:"image_url,omitempty"`
}
