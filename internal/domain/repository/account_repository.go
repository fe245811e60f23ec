package repository

import (
	"context"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/pkg/pagination"
	"github.com/google/uuid"
)

// AccountFilterParams holds the filters accepted by the account listing
type AccountFilterParams struct {
	Pagination   *pagination.PaginationParams
	AccountClass *enum.AccountClass
	Search       string
	ActiveOnly   bool
}

// AccountRepository defines the interface for chart-of-accounts data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	// Deactivate soft-disables an account; accounts referenced by entry lines
	// are never deleted.
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *AccountFilterParams) ([]entity.Account, int64, error)
}
