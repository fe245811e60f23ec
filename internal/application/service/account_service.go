package service

import (
	"context"
	"errors"
	"strings"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/pkg/apperror"
	"github.com/belcompta/belcompta-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService manages the chart of accounts
type AccountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccountInput represents the create account input
type CreateAccountInput struct {
	AccountNumber string
	AccountName   string
	ParentID      *uuid.UUID
	Description   string
}

// CreateAccount adds an account to the chart. The account class is derived
// from the leading digit of the account number; a parent account's number
// must be a strict prefix of the child's.
func (s *AccountService) CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error) {
	class, err := enum.AccountClassFromNumber(input.AccountNumber)
	if err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "account_number", Message: err.Error()},
		})
	}
	if input.AccountName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "account_name", Message: "Account name is required"},
		})
	}

	if input.ParentID != nil {
		parent, err := s.accountRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NewNotFoundError("Parent account")
		}
		if !strings.HasPrefix(input.AccountNumber, parent.AccountNumber) ||
			len(parent.AccountNumber) >= len(input.AccountNumber) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "parent_id", Message: "Parent account number must be a strict prefix of the account number"},
			})
		}
	}

	account := &entity.Account{
		AccountNumber: input.AccountNumber,
		AccountName:   input.AccountName,
		AccountClass:  class,
		ParentID:      input.ParentID,
		IsActive:      true,
		Description:   input.Description,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Account number already exists")
		}
		return nil, err
	}

	return account, nil
}

// GetAccount returns one account by id
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}
	return account, nil
}

// UpdateAccountInput represents the update account input
type UpdateAccountInput struct {
	AccountName *string
	Description *string
	IsActive    *bool
}

// UpdateAccount changes the mutable fields of an account. The account
// number and class are fixed once created.
func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, input *UpdateAccountInput) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	if input.AccountName != nil {
		account.AccountName = *input.AccountName
	}
	if input.Description != nil {
		account.Description = *input.Description
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeactivateAccount soft-disables an account. Accounts referenced by entry
// lines are never deleted.
func (s *AccountService) DeactivateAccount(ctx context.Context, id uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return apperror.NewNotFoundError("Account")
	}
	return s.accountRepo.Deactivate(ctx, id)
}

// ListAccounts returns accounts matching the given filters
func (s *AccountService) ListAccounts(ctx context.Context, params *repository.AccountFilterParams) (*pagination.PaginatedResult[entity.Account], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	accounts, total, err := s.accountRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(accounts,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
