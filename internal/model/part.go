package model

// DefaultMinStockLevel is the restock threshold applied when a part is created without one.
const DefaultMinStockLevel = 20

type Part struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PartType      string `json:"part_type"`
	CarModel      string `json:"car_model"`
	Stock         int    `json:"stock"`
	MinStockLevel int    `json:"min_stock_level"`
}

// NeedsRestock reports whether the stock on hand has fallen to or below the alert threshold.
func (p Part) NeedsRestock() bool {
	return p.Stock <= p.MinStockLevel
}
