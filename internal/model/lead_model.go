package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Lead is a contact-form submission.
type Lead struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(120);not null" json:"name"`
	Email      string         `gorm:"type:varchar(254);not null;index:idx_leads_email" json:"email"`
	Phone      string         `gorm:"type:varchar(40)" json:"phone,omitempty"`
	Company    string         `gorm:"type:varchar(160)" json:"company,omitempty"`
	Category   string         `gorm:"type:varchar(80)" json:"category,omitempty"`
	Message    string         `gorm:"type:text;not null" json:"message"`
	SourcePath string         `gorm:"type:varchar(255)" json:"source_path,omitempty"`
	Metadata   datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP;index:idx_leads_created" json:"created_at"`
}

func (Lead) TableName() string {
	return "leads"
}
