package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/praveenm/billing-api/internal/application/service"
	"github.com/praveenm/billing-api/internal/presentation/http/dto/request"
	"github.com/praveenm/billing-api/internal/presentation/http/dto/response"
)

// DenominationHandler handles denomination-related HTTP requests
type DenominationHandler struct {
	denominationService *service.DenominationService
}

// NewDenominationHandler creates a new denomination handler
func NewDenominationHandler(denominationService *service.DenominationService) *DenominationHandler {
	return &DenominationHandler{denominationService: denominationService}
}

// List handles listing the denomination set
func (h *DenominationHandler) List(c *gin.Context) {
	denominations, err := h.denominationService.ListDenominations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Denominations retrieved successfully", denominations)
}

// Create handles creating a denomination
func (h *DenominationHandler) Create(c *gin.Context) {
	var req request.CreateDenominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	denomination, err := h.denominationService.CreateDenomination(c.Request.Context(), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Denomination created successfully", denomination)
}

// Delete handles deleting a denomination by ID
func (h *DenominationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid denomination ID")
		return
	}

	if err := h.denominationService.DeleteDenomination(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Denomination deleted successfully", nil)
}

// ResolveChange handles standalone change resolution against the current
// denomination set
func (h *DenominationHandler) ResolveChange(c *gin.Context) {
	var req request.ResolveChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resolution, err := h.denominationService.ResolveChange(c.Request.Context(), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Change resolved successfully", resolution)
}
