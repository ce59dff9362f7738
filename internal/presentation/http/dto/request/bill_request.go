package request

// BillItemRequest represents one requested line in a bill
type BillItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	CustomerEmail string            `json:"customer_email" binding:"required,email"`
	Items         []BillItemRequest `json:"items" binding:"required,min=1,dive"`
	PaidAmount    float64           `json:"paid_amount" binding:"required,gt=0"`
}

// BillFilterRequest represents bill filter parameters
type BillFilterRequest struct {
	CustomerEmail string `form:"customer_email"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
