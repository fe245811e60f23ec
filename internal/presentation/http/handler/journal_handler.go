package handler

import (
	"github.com/belcompta/belcompta-api/internal/application/service"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JournalHandler handles journal HTTP requests
type JournalHandler struct {
	journalService *service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// Create handles adding a journal
func (h *JournalHandler) Create(c *gin.Context) {
	var req struct {
		Code        string `json:"code" binding:"required"`
		Name        string `json:"name" binding:"required"`
		JournalType string `json:"journal_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	journalType, err := enum.ParseJournalType(req.JournalType)
	if err != nil {
		response.BadRequest(c, "Invalid journal type")
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), &service.CreateJournalInput{
		Code:        req.Code,
		Name:        req.Name,
		JournalType: journalType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Journal created successfully", journal)
}

// Get handles getting a single journal
func (h *JournalHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid journal ID")
		return
	}

	journal, err := h.journalService.GetJournal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Journal retrieved successfully", journal)
}

// Update handles updating a journal's name or active flag
func (h *JournalHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid journal ID")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), id, &service.UpdateJournalInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Journal updated successfully", journal)
}

// List handles listing journals
func (h *JournalHandler) List(c *gin.Context) {
	journals, err := h.journalService.ListJournals(c.Request.Context(), c.Query("active_only") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Journals retrieved successfully", journals)
}
