package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

type TransitionStageInput struct {
	WorkspaceID string       `json:"workspace_id"`
	LeadID      string       `json:"lead_id"`
	TargetStage entity.Stage `json:"target_stage"`
}

type TransitionStageOutput struct {
	Lead *entity.Lead `json:"lead"`
	// PreviousStage permite ao cliente desfazer a movimentação otimista do
	// quadro quando a resposta autoritativa divergir.
	PreviousStage entity.Stage `json:"previous_stage"`
	// Messages são as mensagens geradas com sucesso pelo fan-out de gatilhos.
	Messages []*entity.AIMessage `json:"generated_messages"`
	// Warnings relatam falhas parciais do fan-out. A transição em si já está
	// persistida quando um warning aparece; nada aqui é motivo de rollback.
	Warnings []string `json:"warnings,omitempty"`
}

// TransitionStageUseCase é o motor de transição de etapa: valida, persiste a
// mudança e dispara a geração de mensagens das campanhas com gatilho na etapa
// destino. A mudança de etapa é o fato durável; a geração de mensagens é
// efeito derivado de melhor esforço.
//
// Concorrência: chamadas simultâneas sobre o mesmo lead não são serializadas
// aqui; a última escrita no banco vence.
type TransitionStageUseCase struct {
	Leads     entity.LeadRepositoryInterface
	Campaigns entity.CampaignRepositoryInterface
	Messages  entity.AIMessageRepositoryInterface
	Renderer  *MessageRenderer
}

func NewTransitionStageUseCase(
	leads entity.LeadRepositoryInterface,
	campaigns entity.CampaignRepositoryInterface,
	messages entity.AIMessageRepositoryInterface,
	renderer *MessageRenderer,
) *TransitionStageUseCase {
	return &TransitionStageUseCase{
		Leads:     leads,
		Campaigns: campaigns,
		Messages:  messages,
		Renderer:  renderer,
	}
}

func (uc *TransitionStageUseCase) Execute(ctx context.Context, input TransitionStageInput) (*TransitionStageOutput, error) {
	if !entity.IsValidStage(input.TargetStage) {
		return nil, NewValidationError(fmt.Sprintf("etapa inválida: %s", input.TargetStage))
	}

	lead, err := uc.Leads.FindByID(ctx, input.WorkspaceID, input.LeadID)
	if err != nil {
		return nil, NewPersistenceError("falha ao buscar lead: " + err.Error())
	}
	if lead == nil {
		return nil, NewNotFoundError("lead não encontrado")
	}

	previous := lead.Stage

	// Mesma etapa: sucesso idempotente, sem escrita e sem gatilhos.
	if lead.Stage == input.TargetStage {
		return &TransitionStageOutput{Lead: lead, PreviousStage: previous, Messages: []*entity.AIMessage{}}, nil
	}

	if allowed, reason := CanTransition(lead, input.TargetStage); !allowed {
		return nil, NewValidationError(reason)
	}

	if err := uc.Leads.UpdateStage(ctx, input.WorkspaceID, lead.ID, input.TargetStage); err != nil {
		return nil, NewPersistenceError("falha ao mover lead: " + err.Error())
	}
	lead.Stage = input.TargetStage

	// A partir daqui a transição está comprometida. Falhas abaixo não revertem.
	output := &TransitionStageOutput{Lead: lead, PreviousStage: previous, Messages: []*entity.AIMessage{}}

	// Lista fresca a cada transição: a flag is_active pode ter mudado.
	campaigns, err := uc.Campaigns.ListActiveByTrigger(ctx, input.WorkspaceID, input.TargetStage)
	if err != nil {
		log.Printf("⚠️ Transição salva, mas falha ao buscar campanhas de gatilho: %v", err)
		output.Warnings = append(output.Warnings, "não foi possível avaliar os gatilhos de campanha")
		return output, nil
	}

	for _, campaign := range campaigns {
		message := entity.NewAIMessage(lead.ID, campaign.ID, uc.Renderer.Render(lead, campaign))

		if err := uc.Messages.Create(ctx, message); err != nil {
			log.Printf("⚠️ Falha ao gerar mensagem da campanha %s: %v", campaign.Name, err)
			output.Warnings = append(output.Warnings,
				fmt.Sprintf("falha ao gerar mensagem da campanha %s", campaign.Name))
			continue
		}

		output.Messages = append(output.Messages, message)
	}

	return output, nil
}
