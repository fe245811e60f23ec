package service

import (
	"context"
	"errors"

	"github.com/belcompta/belcompta-api/internal/domain/entity"
	"github.com/belcompta/belcompta-api/internal/domain/enum"
	"github.com/belcompta/belcompta-api/internal/domain/repository"
	"github.com/belcompta/belcompta-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalService manages the ledger journals
type JournalService struct {
	journalRepo repository.JournalRepository
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo repository.JournalRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

// CreateJournalInput represents the create journal input
type CreateJournalInput struct {
	Code        string
	Name        string
	JournalType enum.JournalType
}

// CreateJournal adds a journal. Codes are unique across the ledger.
func (s *JournalService) CreateJournal(ctx context.Context, input *CreateJournalInput) (*entity.Journal, error) {
	if input.Code == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "code", Message: "Code is required"},
		})
	}
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	journal := &entity.Journal{
		Code:        input.Code,
		Name:        input.Name,
		JournalType: input.JournalType,
		IsActive:    true,
	}

	if err := s.journalRepo.Create(ctx, journal); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Journal code already exists")
		}
		return nil, err
	}

	return journal, nil
}

// GetJournal returns one journal by id
func (s *JournalService) GetJournal(ctx context.Context, id uuid.UUID) (*entity.Journal, error) {
	journal, err := s.journalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, apperror.NewNotFoundError("Journal")
	}
	return journal, nil
}

// UpdateJournalInput represents the update journal input
type UpdateJournalInput struct {
	Name     *string
	IsActive *bool
}

// UpdateJournal changes a journal's name or active flag. The code and type
// are fixed once created; entries reference them by number prefix.
func (s *JournalService) UpdateJournal(ctx context.Context, id uuid.UUID, input *UpdateJournalInput) (*entity.Journal, error) {
	journal, err := s.journalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, apperror.NewNotFoundError("Journal")
	}

	if input.Name != nil {
		journal.Name = *input.Name
	}
	if input.IsActive != nil {
		journal.IsActive = *input.IsActive
	}

	if err := s.journalRepo.Update(ctx, journal); err != nil {
		return nil, err
	}
	return journal, nil
}

// ListJournals returns journals, optionally only the active ones
func (s *JournalService) ListJournals(ctx context.Context, activeOnly bool) ([]entity.Journal, error) {
	return s.journalRepo.List(ctx, activeOnly)
}
