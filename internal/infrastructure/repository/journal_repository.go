package repository

import (
	"context"
	"errors"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	domainRepo "github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *gorm.DB) domainRepo.JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, journal *entity.Journal) error {
	return r.db.WithContext(ctx).Create(journal).Error
}

func (r *journalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Journal, error) {
	var journal entity.Journal
	err := r.db.WithContext(ctx).First(&journal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &journal, err
}

func (r *journalRepository) GetByCode(ctx context.Context, code string) (*entity.Journal, error) {
	var journal entity.Journal
	err := r.db.WithContext(ctx).First(&journal, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &journal, err
}

func (r *journalRepository) Update(ctx context.Context, journal *entity.Journal) error {
	return r.db.WithContext(ctx).Save(journal).Error
}

func (r *journalRepository) List(ctx context.Context, activeOnly bool) ([]entity.Journal, error) {
	var journals []entity.Journal
	query := r.db.WithContext(ctx).Model(&entity.Journal{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("code ASC").Find(&journals).Error
	return journals, err
}
