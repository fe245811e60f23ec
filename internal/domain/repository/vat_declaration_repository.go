package repository

import (
	"context"
	"time"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/google/uuid"
)

// VATDeclarationRepository defines the interface for VAT declaration data operations
type VATDeclarationRepository interface {
	// Create persists the declaration. A duplicate (period_type, year, period)
	// surfaces as gorm.ErrDuplicatedKey for the caller to report as a conflict.
	Create(ctx context.Context, declaration *entity.VATDeclaration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VATDeclaration, error)
	GetByPeriod(ctx context.Context, periodType enum.PeriodType, year, period int) (*entity.VATDeclaration, error)
	List(ctx context.Context, year *int) ([]entity.VATDeclaration, error)
	MarkSubmitted(ctx context.Context, id uuid.UUID, submittedAt time.Time) error
}
