package models

// LowStockThreshold is the unit count below which a product needs reordering.
const LowStockThreshold = 10

// Product represents a catalog entry as seen by the merchant dashboard
type Product struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compareAtPrice"`
	Inventory      int      `json:"inventory"`
	Vendor         string   `json:"vendor"`
	Category       string   `json:"category"`
	SKU            string   `json:"sku"`
	Weight         float64  `json:"weight"`
	Status         string   `json:"status"`
	Tags           []string `json:"tags"`
	SalesCount     int      `json:"salesCount"`
	Views          int      `json:"views"`
}

// StockItem is the short form of a product used in inventory alerts
type StockItem struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Inventory int    `json:"inventory"`
	Category  string `json:"category"`
}

func (p *Product) IsLowStock() bool {
	return p.Inventory < LowStockThreshold
}

func (p *Product) IsOutOfStock() bool {
	return p.Inventory <= 0
}

func (p *Product) StockItem() StockItem {
	return StockItem{
		ID:        p.ID,
		Title:     p.Title,
		Inventory: p.Inventory,
		Category:  p.Category,
	}
}
