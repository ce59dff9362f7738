package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/praveenm/billing-api/internal/application/service"
	"github.com/praveenm/billing-api/internal/domain/repository"
	"github.com/praveenm/billing-api/internal/presentation/http/dto/request"
	"github.com/praveenm/billing-api/internal/presentation/http/dto/response"
	"github.com/praveenm/billing-api/pkg/pagination"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

// Create handles creating a bill
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.BillItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.BillItemInput{
			ProductCode: item.ProductID,
			Quantity:    item.Quantity,
		}
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		PaidAmount:    req.PaidAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles getting a single bill by ID
func (h *BillHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// List handles listing bills, newest first
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		CustomerEmail: filter.CustomerEmail,
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// GetCustomerPurchases handles the purchase history of one customer
func (h *BillHandler) GetCustomerPurchases(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.BadRequest(c, "Customer email is required")
		return
	}

	history, err := h.billingService.GetCustomerPurchases(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer purchases retrieved successfully", history)
}
