package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/praveenm/billing-api/internal/application/service"
	"github.com/praveenm/billing-api/internal/domain/repository"
	"github.com/praveenm/billing-api/internal/presentation/http/dto/request"
	"github.com/praveenm/billing-api/internal/presentation/http/dto/response"
	"github.com/praveenm/billing-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.ProductInput{
		Code:            req.ProductID,
		Name:            req.Name,
		AvailableStocks: req.AvailableStocks,
		PricePerUnit:    req.PricePerUnit,
		TaxPercentage:   req.TaxPercentage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product by its external code
func (h *ProductHandler) Get(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "Product ID is required")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "Product ID is required")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), code, &service.ProductInput{
		Code:            req.ProductID,
		Name:            req.Name,
		AvailableStocks: req.AvailableStocks,
		PricePerUnit:    req.PricePerUnit,
		TaxPercentage:   req.TaxPercentage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product by its external code
func (h *ProductHandler) Delete(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "Product ID is required")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), code); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}
