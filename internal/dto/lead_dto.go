package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLeadRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email,max=254"`
	Phone      string `json:"phone" validate:"omitempty,max=40"`
	Company    string `json:"company" validate:"omitempty,max=160"`
	Category   string `json:"category" validate:"omitempty,max=80"`
	Message    string `json:"message" validate:"required,max=5000"`
	SourcePath string `json:"source_path" validate:"omitempty,max=255"`
}

type CreateLeadResponse struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
