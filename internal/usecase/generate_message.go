package usecase

import (
	"context"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

type GenerateMessageInput struct {
	WorkspaceID string `json:"workspace_id"`
	LeadID      string `json:"lead_id"`
	CampaignID  string `json:"campaign_id"`
}

// GenerateMessageUseCase é o caminho manual de geração: o usuário escolhe a
// campanha. Diferente do fan-out automático, não exige campanha ativa nem
// gatilho compatível — qualquer campanha do workspace serve.
type GenerateMessageUseCase struct {
	Leads     entity.LeadRepositoryInterface
	Campaigns entity.CampaignRepositoryInterface
	Messages  entity.AIMessageRepositoryInterface
	Renderer  *MessageRenderer
}

func NewGenerateMessageUseCase(
	leads entity.LeadRepositoryInterface,
	campaigns entity.CampaignRepositoryInterface,
	messages entity.AIMessageRepositoryInterface,
	renderer *MessageRenderer,
) *GenerateMessageUseCase {
	return &GenerateMessageUseCase{
		Leads:     leads,
		Campaigns: campaigns,
		Messages:  messages,
		Renderer:  renderer,
	}
}

func (uc *GenerateMessageUseCase) Execute(ctx context.Context, input GenerateMessageInput) (*entity.AIMessage, error) {
	lead, err := uc.Leads.FindByID(ctx, input.WorkspaceID, input.LeadID)
	if err != nil {
		return nil, NewPersistenceError("falha ao buscar lead: " + err.Error())
	}
	if lead == nil {
		return nil, NewNotFoundError("lead não encontrado")
	}

	campaign, err := uc.Campaigns.FindByID(ctx, input.WorkspaceID, input.CampaignID)
	if err != nil {
		return nil, NewPersistenceError("falha ao buscar campanha: " + err.Error())
	}
	if campaign == nil {
		return nil, NewNotFoundError("campanha não encontrada")
	}

	message := entity.NewAIMessage(lead.ID, campaign.ID, uc.Renderer.Render(lead, campaign))

	if err := uc.Messages.Create(ctx, message); err != nil {
		return nil, NewPersistenceError("falha ao salvar mensagem: " + err.Error())
	}

	return message, nil
}
