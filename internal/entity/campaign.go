package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Campaign é uma configuração de abordagem do workspace. Quando TriggerStage
// está preenchido e a campanha está ativa, a entrada de um lead nessa etapa
// dispara a geração automática de mensagem.
type Campaign struct {
	ID           string    `json:"id"`
	WorkspaceID  string    `json:"workspace_id"`
	Name         string    `json:"name"`
	OfferContext string    `json:"offer_context,omitempty"`
	AIPrompt     string    `json:"ai_prompt,omitempty"`
	IsActive     bool      `json:"is_active"`
	TriggerStage Stage     `json:"trigger_stage,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, campaign *Campaign) error
	FindByID(ctx context.Context, workspaceID, id string) (*Campaign, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*Campaign, error)
	// ListActiveByTrigger devolve só campanhas ativas com trigger_stage igual à
	// etapa informada, na ordem de criação mais recente primeiro.
	ListActiveByTrigger(ctx context.Context, workspaceID string, stage Stage) ([]*Campaign, error)
	Update(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, workspaceID, id string) error
}

func NewCampaign(workspaceID, name, offerContext, aiPrompt string, triggerStage Stage) (*Campaign, error) {
	campaign := &Campaign{
		ID:           uuid.New().String(),
		WorkspaceID:  workspaceID,
		Name:         strings.TrimSpace(name),
		OfferContext: offerContext,
		AIPrompt:     aiPrompt,
		IsActive:     true,
		TriggerStage: triggerStage,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	return campaign, nil
}

func (c *Campaign) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if c.WorkspaceID == "" {
		return errors.New("workspace_id is required")
	}
	if c.TriggerStage != "" && !IsValidStage(c.TriggerStage) {
		return errors.New("trigger_stage is invalid")
	}
	return nil
}
