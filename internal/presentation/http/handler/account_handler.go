package handler

import (
	"strconv"

	"github.com/belcompta/belcompta-api/internal/application/service"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles chart-of-accounts HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Create handles adding an account to the chart
func (h *AccountHandler) Create(c *gin.Context) {
	var req struct {
		AccountNumber string  `json:"account_number" binding:"required"`
		AccountName   string  `json:"account_name" binding:"required"`
		ParentID      *string `json:"parent_id"`
		Description   string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			response.BadRequest(c, "Invalid parent ID")
			return
		}
		parentID = &id
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), &service.CreateAccountInput{
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		ParentID:      parentID,
		Description:   req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Account created successfully", account)
}

// Get handles getting a single account
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account retrieved successfully", account)
}

// Update handles updating an account's mutable fields
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	var req struct {
		AccountName *string `json:"account_name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), id, &service.UpdateAccountInput{
		AccountName: req.AccountName,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account updated successfully", account)
}

// Deactivate handles soft-disabling an account
func (h *AccountHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing accounts filtered by class and name search
func (h *AccountHandler) List(c *gin.Context) {
	var accountClass *enum.AccountClass
	if s := c.Query("class"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || !enum.AccountClass(n).IsValid() {
			response.BadRequest(c, "Invalid account class")
			return
		}
		class := enum.AccountClass(n)
		accountClass = &class
	}

	result, err := h.accountService.ListAccounts(c.Request.Context(), &repository.AccountFilterParams{
		Pagination:   paginationFromQuery(c),
		AccountClass: accountClass,
		Search:       c.Query("search"),
		ActiveOnly:   c.Query("active_only") == "true",
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Accounts retrieved successfully", result)
}
