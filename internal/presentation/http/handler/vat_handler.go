package handler

import (
	"strconv"
	"time"

	"github.com/belcompta/belcompta-api/internal/application/service"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VATHandler handles VAT declaration HTTP requests
type VATHandler struct {
	vatService *service.VATService
}

// NewVATHandler creates a new VAT declaration handler
func NewVATHandler(vatService *service.VATService) *VATHandler {
	return &VATHandler{vatService: vatService}
}

// Generate handles generating a declaration for a period
func (h *VATHandler) Generate(c *gin.Context) {
	var req struct {
		PeriodType string `json:"period_type" binding:"required"`
		Year       int    `json:"year" binding:"required"`
		Period     int    `json:"period" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	periodType, err := enum.ParsePeriodType(req.PeriodType)
	if err != nil {
		response.BadRequest(c, "Invalid period type")
		return
	}

	declaration, err := h.vatService.GenerateDeclaration(c.Request.Context(), periodType, req.Year, req.Period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "VAT declaration generated successfully", declaration)
}

// Get handles getting a single declaration
func (h *VATHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid declaration ID")
		return
	}

	declaration, err := h.vatService.GetDeclaration(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "VAT declaration retrieved successfully", declaration)
}

// List handles listing declarations, optionally filtered by year
func (h *VATHandler) List(c *gin.Context) {
	var year *int
	if s := c.Query("year"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = &n
	}

	declarations, err := h.vatService.ListDeclarations(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "VAT declarations retrieved successfully", declarations)
}

// Submit handles marking a declaration as submitted
func (h *VATHandler) Submit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid declaration ID")
		return
	}

	declaration, err := h.vatService.SubmitDeclaration(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "VAT declaration submitted successfully", declaration)
}
