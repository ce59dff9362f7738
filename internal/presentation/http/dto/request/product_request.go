package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	ProductID       string  `json:"product_id" binding:"required,min=1,max=50"`
	Name            string  `json:"name" binding:"required,min=1,max=255"`
	AvailableStocks int     `json:"available_stocks" binding:"min=0"`
	PricePerUnit    float64 `json:"price_per_unit" binding:"required,gt=0"`
	TaxPercentage   float64 `json:"tax_percentage" binding:"min=0,max=100"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	ProductID       string  `json:"product_id" binding:"omitempty,min=1,max=50"`
	Name            string  `json:"name" binding:"required,min=1,max=255"`
	AvailableStocks int     `json:"available_stocks" binding:"min=0"`
	PricePerUnit    float64 `json:"price_per_unit" binding:"required,gt=0"`
	TaxPercentage   float64 `json:"tax_percentage" binding:"min=0,max=100"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
