package repository

import (
	"context"

	"github.com/arjun/callpilot/internal/domain"
	"gorm.io/gorm"
)

// TranscribedCallRepository handles transcript data operations.
type TranscribedCallRepository struct {
	db *gorm.DB
}

// NewTranscribedCallRepository creates a new TranscribedCallRepository.
func NewTranscribedCallRepository(db *gorm.DB) *TranscribedCallRepository {
	return &TranscribedCallRepository{db: db}
}

// Create inserts a transcript record. The row is keyed by the external call
// id; inserting twice for the same call returns gorm.ErrDuplicatedKey.
func (r *TranscribedCallRepository) Create(ctx context.Context, call *domain.TranscribedCall) error {
	return r.db.WithContext(ctx).Create(call).Error
}

// GetByID retrieves a transcript by external call id.
func (r *TranscribedCallRepository) GetByID(ctx context.Context, id string) (*domain.TranscribedCall, error) {
	var call domain.TranscribedCall
	if err := r.db.WithContext(ctx).First(&call, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

// ListByAdmin returns an admin's transcripts, newest first.
func (r *TranscribedCallRepository) ListByAdmin(ctx context.Context, adminID string) ([]domain.TranscribedCall, error) {
	var calls []domain.TranscribedCall
	if err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}
