package handler

import (
	"github.com/belcompta/belcompta-api/internal/application/service"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/internal/presentation/http/dto/request"
	"github.com/belcompta/belcompta-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EntryHandler handles accounting entry HTTP requests
type EntryHandler struct {
	entryService *service.EntryService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// Create handles posting a new entry to a journal
func (h *EntryHandler) Create(c *gin.Context) {
	var req request.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	journalID, err := uuid.Parse(req.JournalID)
	if err != nil {
		response.BadRequest(c, "Invalid journal ID")
		return
	}
	entryDate, err := parseDate(req.EntryDate)
	if err != nil {
		response.BadRequest(c, "Invalid entry date, expected YYYY-MM-DD")
		return
	}

	lines := make([]service.EntryLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		accountID, err := uuid.Parse(line.AccountID)
		if err != nil {
			response.BadRequest(c, "Invalid account ID")
			return
		}
		lines = append(lines, service.EntryLineInput{
			AccountID:    accountID,
			Description:  line.Description,
			DebitAmount:  line.DebitAmount,
			CreditAmount: line.CreditAmount,
			VATCode:      line.VATCode,
			VATAmount:    line.VATAmount,
		})
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), &service.CreateEntryInput{
		JournalID:   journalID,
		EntryDate:   entryDate,
		Description: req.Description,
		Reference:   req.Reference,
		Lines:       lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Entry created successfully", entry)
}

// Get handles getting a single entry with its lines
func (h *EntryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entry retrieved successfully", entry)
}

// List handles listing entries filtered by journal and date range
func (h *EntryHandler) List(c *gin.Context) {
	journalID, err := parseUUIDQuery(c, "journal_id")
	if err != nil {
		response.BadRequest(c, "Invalid journal ID")
		return
	}
	dateFrom, err := parseDateQuery(c, "date_from")
	if err != nil {
		response.BadRequest(c, "Invalid date_from, expected YYYY-MM-DD")
		return
	}
	dateTo, err := parseDateQuery(c, "date_to")
	if err != nil {
		response.BadRequest(c, "Invalid date_to, expected YYYY-MM-DD")
		return
	}

	result, err := h.entryService.ListEntries(c.Request.Context(), &repository.EntryFilterParams{
		Pagination: paginationFromQuery(c),
		JournalID:  journalID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Entries retrieved successfully", result)
}

// TrialBalance handles the per-account debit/credit aggregate report
func (h *EntryHandler) TrialBalance(c *gin.Context) {
	dateFrom, err := parseDateQuery(c, "date_from")
	if err != nil {
		response.BadRequest(c, "Invalid date_from, expected YYYY-MM-DD")
		return
	}
	dateTo, err := parseDateQuery(c, "date_to")
	if err != nil {
		response.BadRequest(c, "Invalid date_to, expected YYYY-MM-DD")
		return
	}

	balance, err := h.entryService.TrialBalance(c.Request.Context(), dateFrom, dateTo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trial balance computed successfully", balance)
}
