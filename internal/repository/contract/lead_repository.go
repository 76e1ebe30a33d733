package contract

import (
	"context"

	"stratigo-site/internal/model"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	Recent(ctx context.Context, limit int) ([]model.Lead, error)
}
