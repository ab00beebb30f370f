package usecase

import (
	"context"
	"log"
	"time"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
	"github.com/rafaelmv2/funil-sdr/internal/infra/queue"
)

type SendMessageInput struct {
	WorkspaceID string `json:"workspace_id"`
	MessageID   string `json:"message_id"`
}

type SendMessageOutput struct {
	Message *entity.AIMessage `json:"message"`
	Lead    *entity.Lead      `json:"lead,omitempty"`
	// Warnings relatam efeitos derivados que falharam depois da marcação de
	// envio já persistida (transição do lead, publicação do despacho).
	Warnings []string `json:"warnings,omitempty"`
}

// SendMessageUseCase marca uma mensagem como enviada exatamente uma vez.
// Acoplamento documentado: o envio também move o lead dono para
// "Tentando Contato", passando pelo mesmo motor de transição (e, portanto,
// pelas mesmas regras de validação). Depois da marcação, o conteúdo é
// publicado na fila de despacho para entrega no canal do lead.
type SendMessageUseCase struct {
	Messages   entity.AIMessageRepositoryInterface
	Leads      entity.LeadRepositoryInterface
	Campaigns  entity.CampaignRepositoryInterface
	Transition *TransitionStageUseCase
	Producer   queue.DispatchProducerInterface
}

func NewSendMessageUseCase(
	messages entity.AIMessageRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	campaigns entity.CampaignRepositoryInterface,
	transition *TransitionStageUseCase,
	producer queue.DispatchProducerInterface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		Messages:   messages,
		Leads:      leads,
		Campaigns:  campaigns,
		Transition: transition,
		Producer:   producer,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	message, err := uc.Messages.FindByID(ctx, input.WorkspaceID, input.MessageID)
	if err != nil {
		return nil, NewPersistenceError("falha ao buscar mensagem: " + err.Error())
	}
	if message == nil {
		return nil, NewNotFoundError("mensagem não encontrada")
	}

	if message.IsSent {
		return nil, NewAlreadySentError("mensagem já foi enviada")
	}

	sentAt := time.Now()
	if err := uc.Messages.MarkSent(ctx, input.WorkspaceID, message.ID, sentAt); err != nil {
		return nil, NewPersistenceError("falha ao marcar mensagem como enviada: " + err.Error())
	}
	if err := message.MarkSent(sentAt); err != nil {
		// Inalcançável: IsSent foi checado acima.
		return nil, NewAlreadySentError(err.Error())
	}

	output := &SendMessageOutput{Message: message}

	// O envio está comprometido. O que falhar daqui em diante vira warning.
	transition, err := uc.Transition.Execute(ctx, TransitionStageInput{
		WorkspaceID: input.WorkspaceID,
		LeadID:      message.LeadID,
		TargetStage: entity.StageTentandoContato,
	})
	if err != nil {
		log.Printf("⚠️ Mensagem enviada, mas falha ao mover lead: %v", err)
		output.Warnings = append(output.Warnings, "não foi possível mover o lead para Tentando Contato")
	} else {
		output.Lead = transition.Lead
		output.Warnings = append(output.Warnings, transition.Warnings...)
	}

	uc.publishDispatch(ctx, input.WorkspaceID, message, output)

	return output, nil
}

func (uc *SendMessageUseCase) publishDispatch(ctx context.Context, workspaceID string, message *entity.AIMessage, output *SendMessageOutput) {
	lead := output.Lead
	if lead == nil {
		var err error
		lead, err = uc.Leads.FindByID(ctx, workspaceID, message.LeadID)
		if err != nil || lead == nil {
			output.Warnings = append(output.Warnings, "despacho não publicado: lead indisponível")
			return
		}
	}

	payload := queue.DispatchPayload{
		MessageID:   message.ID,
		WorkspaceID: lead.WorkspaceID,
		LeadID:      lead.ID,
		Channel:     queue.ChannelEmail,
		LeadName:    lead.Name,
		LeadEmail:   lead.Email,
		LeadPhone:   lead.Phone,
		Content:     message.Content,
	}

	if lead.Phone != "" {
		payload.Channel = queue.ChannelWhatsApp
	}

	if message.CampaignID != "" {
		if campaign, err := uc.Campaigns.FindByID(ctx, lead.WorkspaceID, message.CampaignID); err == nil && campaign != nil {
			payload.CampaignName = campaign.Name
		}
	}

	if err := uc.Producer.PublishDispatch(ctx, payload); err != nil {
		log.Printf("⚠️ Mensagem enviada, mas falha ao publicar despacho: %v", err)
		output.Warnings = append(output.Warnings, "não foi possível publicar o despacho da mensagem")
	}
}
