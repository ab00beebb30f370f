package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrMessageAlreadySent = errors.New("mensagem já foi enviada")

// AIMessage é uma mensagem de abordagem gerada para um lead.
// Invariante: SentAt != nil se e somente se IsSent.
type AIMessage struct {
	ID         string     `json:"id"`
	LeadID     string     `json:"lead_id"`
	CampaignID string     `json:"campaign_id,omitempty"`
	Content    string     `json:"content"`
	IsSent     bool       `json:"is_sent"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AIMessageRepositoryInterface interface {
	Create(ctx context.Context, message *AIMessage) error
	// FindByID é escopado por workspace através do lead dono da mensagem.
	FindByID(ctx context.Context, workspaceID, id string) (*AIMessage, error)
	ListByLead(ctx context.Context, workspaceID, leadID string) ([]*AIMessage, error)
	MarkSent(ctx context.Context, workspaceID, id string, sentAt time.Time) error
	Delete(ctx context.Context, workspaceID, id string) error
}

func NewAIMessage(leadID, campaignID, content string) *AIMessage {
	return &AIMessage{
		ID:         uuid.New().String(),
		LeadID:     leadID,
		CampaignID: campaignID,
		Content:    content,
		IsSent:     false,
		CreatedAt:  time.Now(),
	}
}

// MarkSent transiciona a mensagem para enviada uma única vez.
func (m *AIMessage) MarkSent(at time.Time) error {
	if m.IsSent {
		return ErrMessageAlreadySent
	}
	m.IsSent = true
	m.SentAt = &at
	return nil
}
