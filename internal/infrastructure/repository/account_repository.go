package repository

import (
	"context"
	"errors"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	domainRepo "github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new chart-of-accounts repository
func NewAccountRepository(db *gorm.DB) domainRepo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).First(&account, "account_number = ?", accountNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Account, error) {
	var accounts []entity.Account
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Account{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *accountRepository) List(ctx context.Context, params *domainRepo.AccountFilterParams) ([]entity.Account, int64, error) {
	var accounts []entity.Account
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Account{})

	if params.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if params.AccountClass != nil {
		query = query.Where("account_class = ?", *params.AccountClass)
	}

	if params.Search != "" {
		query = query.Where("account_number ILIKE ? OR account_name ILIKE ?",
			params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("account_number ASC").
		Find(&accounts).Error

	return accounts, total, err
}
