package repository

import (
	"context"

	"github.com/arjun/callpilot/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpertRepository handles expert data operations.
type ExpertRepository struct {
	db *gorm.DB
}

// NewExpertRepository creates a new ExpertRepository.
func NewExpertRepository(db *gorm.DB) *ExpertRepository {
	return &ExpertRepository{db: db}
}

// List returns all experts.
func (r *ExpertRepository) List(ctx context.Context) ([]domain.Expert, error) {
	var experts []domain.Expert
	if err := r.db.WithContext(ctx).Find(&experts).Error; err != nil {
		return nil, err
	}
	return experts, nil
}

// Create inserts a new expert record, assigning an ID and default status
// when absent.
func (r *ExpertRepository) Create(ctx context.Context, expert *domain.Expert) error {
	if expert.ID == "" {
		expert.ID = uuid.New().String()
	}
	if expert.Status == "" {
		expert.Status = domain.ExpertStatusAvailable
	}
	return r.db.WithContext(ctx).Create(expert).Error
}
