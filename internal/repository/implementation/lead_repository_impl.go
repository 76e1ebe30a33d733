package implementation

import (
	"context"

	"stratigo-site/internal/model"
	"stratigo-site/internal/repository/contract"

	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) contract.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) Recent(ctx context.Context, limit int) ([]model.Lead, error) {
	var leads []model.Lead
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&leads).Error
	return leads, err
}
