package repository

import (
	"context"
	"errors"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	domainRepo "github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vatDeclarationRepository struct {
	db *gorm.DB
}

// NewVATDeclarationRepository creates a new VAT declaration repository
func NewVATDeclarationRepository(db *gorm.DB) domainRepo.VATDeclarationRepository {
	return &vatDeclarationRepository{db: db}
}

func (r *vatDeclarationRepository) Create(ctx context.Context, declaration *entity.VATDeclaration) error {
	return r.db.WithContext(ctx).Create(declaration).Error
}

func (r *vatDeclarationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VATDeclaration, error) {
	var declaration entity.VATDeclaration
	err := r.db.WithContext(ctx).First(&declaration, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &declaration, err
}

func (r *vatDeclarationRepository) GetByPeriod(ctx context.Context, periodType enum.PeriodType, year, period int) (*entity.VATDeclaration, error) {
	var declaration entity.VATDeclaration
	err := r.db.WithContext(ctx).
		First(&declaration, "period_type = ? AND year = ? AND period = ?", periodType, year, period).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &declaration, err
}

func (r *vatDeclarationRepository) List(ctx context.Context, year *int) ([]entity.VATDeclaration, error) {
	var declarations []entity.VATDeclaration
	query := r.db.WithContext(ctx).Model(&entity.VATDeclaration{})
	if year != nil {
		query = query.Where("year = ?", *year)
	}
	err := query.Order("year DESC, period DESC").Find(&declarations).Error
	return declarations, err
}

func (r *vatDeclarationRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, submittedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.VATDeclaration{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_submitted":    true,
			"submission_date": submittedAt,
		}).Error
}
