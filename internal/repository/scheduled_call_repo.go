package repository

import (
	"context"

	"github.com/arjun/callpilot/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduledCallRepository handles scheduled-call data operations.
type ScheduledCallRepository struct {
	db *gorm.DB
}

// NewScheduledCallRepository creates a new ScheduledCallRepository.
func NewScheduledCallRepository(db *gorm.DB) *ScheduledCallRepository {
	return &ScheduledCallRepository{db: db}
}

// List returns all scheduled calls.
func (r *ScheduledCallRepository) List(ctx context.Context) ([]domain.ScheduledCall, error) {
	var calls []domain.ScheduledCall
	if err := r.db.WithContext(ctx).Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

// ListByStatus returns scheduled calls filtered by scheduling status.
func (r *ScheduledCallRepository) ListByStatus(ctx context.Context, status domain.ScheduledCallStatus) ([]domain.ScheduledCall, error) {
	var calls []domain.ScheduledCall
	if err := r.db.WithContext(ctx).Where("status = ?", status).Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

// GetByID retrieves a scheduled call by its ID.
func (r *ScheduledCallRepository) GetByID(ctx context.Context, id string) (*domain.ScheduledCall, error) {
	var call domain.ScheduledCall
	if err := r.db.WithContext(ctx).First(&call, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

// Create inserts a new scheduled call, assigning an ID and default status
// when absent.
func (r *ScheduledCallRepository) Create(ctx context.Context, call *domain.ScheduledCall) error {
	if call.ID == "" {
		call.ID = uuid.New().String()
	}
	if call.Status == "" {
		call.Status = domain.ScheduledCallStatusScheduled
	}
	return r.db.WithContext(ctx).Create(call).Error
}

// UpdateCallID links a scheduled call to its external provider call.
// Written once per scheduled call, after a call is successfully placed.
func (r *ScheduledCallRepository) UpdateCallID(ctx context.Context, id, callID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.ScheduledCall{}).
		Where("id = ?", id).
		Update("call_id", callID).Error
}

// UpdateCallStatus mirrors the provider's call progression onto the local row.
func (r *ScheduledCallRepository) UpdateCallStatus(ctx context.Context, id, callStatus string) error {
	return r.db.WithContext(ctx).
		Model(&domain.ScheduledCall{}).
		Where("id = ?", id).
		Update("call_status", callStatus).Error
}
