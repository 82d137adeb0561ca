package repository

import (
	"context"

	"github.com/arjun/callpilot/internal/domain"
	"gorm.io/gorm"
)

// AdminRepository handles admin data operations.
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Get returns the single admin row. The deployment is single-admin, so the
// first row wins.
func (r *AdminRepository) Get(ctx context.Context) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.db.WithContext(ctx).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
