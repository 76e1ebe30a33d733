package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"stratigo-site/internal/dto"
	"stratigo-site/internal/entity"
	"stratigo-site/internal/model"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/internal/pkg/mailer"
	"stratigo-site/internal/repository/contract"
	"stratigo-site/pkg/analytics"
	"stratigo-site/pkg/events"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var ErrInvalidLead = errors.New("invalid lead")

type ILeadService interface {
	Submit(ctx context.Context, req *dto.CreateLeadRequest, meta map[string]string) (*dto.CreateLeadResponse, error)
}

type leadService struct {
	repo      contract.LeadRepository
	mailer    mailer.IEmailService
	publisher analytics.EventPublisher
	logger    logger.ILogger
	now       func() time.Time
}

// NewLeadService wires the contact-form pipeline. repo, mail and publisher
// are each optional; a nil dependency skips that step.
func NewLeadService(repo contract.LeadRepository, mail mailer.IEmailService, publisher analytics.EventPublisher, log logger.ILogger) ILeadService {
	return &leadService{repo: repo, mailer: mail, publisher: publisher, logger: log, now: time.Now}
}

func (s *leadService) Submit(ctx context.Context, req *dto.CreateLeadRequest, meta map[string]string) (*dto.CreateLeadResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Message = strings.TrimSpace(req.Message)

	if err := entity.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLead, err)
	}

	lead := &model.Lead{
		ID:         uuid.New(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Category:   req.Category,
		Message:    req.Message,
		SourcePath: req.SourcePath,
		Metadata:   datatypes.JSON(marshalMeta(meta)),
		CreatedAt:  s.now(),
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, lead); err != nil {
			return nil, fmt.Errorf("store lead: %w", err)
		}
	}

	if s.mailer != nil {
		if err := s.mailer.SendLeadNotification(lead); err != nil {
			s.logger.Error("LEADS", "Failed to notify team about lead", map[string]interface{}{"lead_id": lead.ID, "error": err.Error()})
		}
		if err := s.mailer.SendLeadAcknowledgement(lead); err != nil {
			s.logger.Warn("LEADS", "Failed to acknowledge lead", map[string]interface{}{"lead_id": lead.ID, "error": err.Error()})
		}
	}

	if s.publisher != nil {
		event := events.New(events.TypeLeadSubmitted, map[string]interface{}{
			"lead_id":     lead.ID.String(),
			"category":    lead.Category,
			"source_path": lead.SourcePath,
		}, lead.CreatedAt)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("LEADS", "Failed to publish lead event", map[string]interface{}{"lead_id": lead.ID, "error": err.Error()})
		}
	}

	s.logger.Info("LEADS", "Lead received", map[string]interface{}{"lead_id": lead.ID, "source_path": lead.SourcePath})

	return &dto.CreateLeadResponse{Id: lead.ID, CreatedAt: lead.CreatedAt}, nil
}

func marshalMeta(meta map[string]string) []byte {
	if len(meta) == 0 {
		return []byte("{}")
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return []byte("{}")
	}
	return raw
}
