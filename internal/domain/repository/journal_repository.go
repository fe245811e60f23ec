package repository

import (
	"context"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/google/uuid"
)

// JournalRepository defines the interface for journal data operations
type JournalRepository interface {
	Create(ctx context.Context, journal *entity.Journal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Journal, error)
	GetByCode(ctx context.Context, code string) (*entity.Journal, error)
	Update(ctx context.Context, journal *entity.Journal) error
	List(ctx context.Context, activeOnly bool) ([]entity.Journal, error)
}
