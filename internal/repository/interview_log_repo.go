package repository

import (
	"context"

	"github.com/arjun/callpilot/internal/domain"
	"gorm.io/gorm"
)

// InterviewLogRepository handles interview-log data operations. Logs are
// append-only; there is deliberately no update operation.
type InterviewLogRepository struct {
	db *gorm.DB
}

// NewInterviewLogRepository creates a new InterviewLogRepository.
func NewInterviewLogRepository(db *gorm.DB) *InterviewLogRepository {
	return &InterviewLogRepository{db: db}
}

// Create inserts a new interview log record.
func (r *InterviewLogRepository) Create(ctx context.Context, log *domain.InterviewLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByCallID returns logs recorded for an external call id.
func (r *InterviewLogRepository) ListByCallID(ctx context.Context, callID string) ([]domain.InterviewLog, error) {
	var logs []domain.InterviewLog
	if err := r.db.WithContext(ctx).Where("call_id = ?", callID).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
