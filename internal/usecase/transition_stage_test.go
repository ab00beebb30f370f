package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

func newTransitionUseCase() (*TransitionStageUseCase, *MockLeadRepository, *MockCampaignRepository, *MockMessageRepository) {
	leadRepo := new(MockLeadRepository)
	campaignRepo := new(MockCampaignRepository)
	messageRepo := new(MockMessageRepository)

	uc := NewTransitionStageUseCase(leadRepo, campaignRepo, messageRepo, NewMessageRenderer(fixedPicker(0)))
	return uc, leadRepo, campaignRepo, messageRepo
}

func TestTransitionStageLeadNotFound(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, _, _ := newTransitionUseCase()

	leadRepo.On("FindByID", ctx, "ws-1", "lead-404").Return(nil, nil)

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-404",
		TargetStage: entity.StageQualificado,
	})

	assert.Nil(t, output)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, domainErr.Code)
}

func TestTransitionStageInvalidTargetStage(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, _, _ := newTransitionUseCase()

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		TargetStage: "etapa_inventada",
	})

	assert.Nil(t, output)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
	leadRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionStageSameStageIsNoOp(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, campaignRepo, messageRepo := newTransitionUseCase()

	lead := &entity.Lead{ID: "lead-1", WorkspaceID: "ws-1", Name: "Ana", Stage: entity.StageQualificado}
	leadRepo.On("FindByID", ctx, "ws-1", "lead-1").Return(lead, nil)

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		TargetStage: entity.StageQualificado,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StageQualificado, output.Lead.Stage)
	assert.Empty(t, output.Messages)
	leadRepo.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	campaignRepo.AssertNotCalled(t, "ListActiveByTrigger", mock.Anything, mock.Anything, mock.Anything)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransitionStageValidationBlocksLeadMapeado(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, _, messageRepo := newTransitionUseCase()

	// Cenário da Ana sem empresa e sem cargo: a transição não pode acontecer
	// e o motivo precisa citar os dois campos.
	lead := &entity.Lead{ID: "lead-1", WorkspaceID: "ws-1", Name: "Ana", Stage: entity.StageBase}
	leadRepo.On("FindByID", ctx, "ws-1", "lead-1").Return(lead, nil)

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		TargetStage: entity.StageLeadMapeado,
	})

	assert.Nil(t, output)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
	assert.Contains(t, domainErr.Message, "Empresa")
	assert.Contains(t, domainErr.Message, "Cargo")
	assert.Equal(t, entity.StageBase, lead.Stage)
	leadRepo.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransitionStagePersistenceFailureRunsNoSideEffects(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, campaignRepo, messageRepo := newTransitionUseCase()

	lead := &entity.Lead{ID: "lead-1", WorkspaceID: "ws-1", Name: "Ana", Stage: entity.StageBase}
	leadRepo.On("FindByID", ctx, "ws-1", "lead-1").Return(lead, nil)
	leadRepo.On("UpdateStage", ctx, "ws-1", "lead-1", entity.StageQualificado).Return(errors.New("conexão caiu"))

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		TargetStage: entity.StageQualificado,
	})

	assert.Nil(t, output)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodePersistence, domainErr.Code)
	campaignRepo.AssertNotCalled(t, "ListActiveByTrigger", mock.Anything, mock.Anything, mock.Anything)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransitionStageTriggerFanOut(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, campaignRepo, messageRepo := newTransitionUseCase()

	lead := &entity.Lead{
		ID: "lead-1", WorkspaceID: "ws-1",
		Name: "Ana", Company: "Acme", JobTitle: "CTO",
		Stage: entity.StageConexaoIniciada,
	}
	leadRepo.On("FindByID", ctx, "ws-1", "lead-1").Return(lead, nil)
	leadRepo.On("UpdateStage", ctx, "ws-1", "lead-1", entity.StageQualificado).Return(nil)

	// O repositório já filtra is_active e trigger_stage: a campanha inativa
	// de mesmo gatilho nem aparece aqui.
	campaigns := []*entity.Campaign{
		{ID: "camp-1", WorkspaceID: "ws-1", Name: "Camp1", IsActive: true, TriggerStage: entity.StageQualificado},
		{ID: "camp-2", WorkspaceID: "ws-1", Name: "Camp2", IsActive: true, TriggerStage: entity.StageQualificado},
	}
	campaignRepo.On("ListActiveByTrigger", ctx, "ws-1", entity.StageQualificado).Return(campaigns, nil)
	messageRepo.On("Create", ctx, mock.Anything).Return(nil)

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		TargetStage: entity.StageQualificado,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StageQualificado, output.Lead.Stage)
	assert.Equal(t, entity.StageConexaoIniciada, output.PreviousStage)
	assert.Len(t, output.Messages, 2)
	assert.Equal(t, "camp-1", output.Messages[0].CampaignID)
	assert.Equal(t, "camp-2", output.Messages[1].CampaignID)
	for _, message := range output.Messages {
		assert.Equal(t, "lead-1", message.LeadID)
		assert.Contains(t, message.Content, "Ana")
		assert.False(t, message.IsSent)
		assert.Nil(t, message.SentAt)
	}
	messageRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestTransitionStagePartialTriggerFailureContinues(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, campaignRepo, messageRepo := newTransitionUseCase()

	lead := &entity.Lead{ID: "lead-1", WorkspaceID: "ws-1", Name: "Ana", Stage: entity.StageBase}
	leadRepo.On("FindByID", ctx, "ws-1", "lead-1").Return(lead, nil)
	leadRepo.On("UpdateStage", ctx, "ws-1", "lead-1", entity.StageQualificado).Return(nil)

	campaigns := []*entity.Campaign{
		{ID: "camp-1", WorkspaceID: "ws-1", Name: "Camp1", IsActive: true, TriggerStage: entity.StageQualificado},
		{ID: "camp-2", WorkspaceID: "ws-1", Name: "Camp2", IsActive: true, TriggerStage: entity.StageQualificado},
	}
	campaignRepo.On("ListActiveByTrigger", ctx, "ws-1", entity.StageQualificado).Return(campaigns, nil)

	// A primeira geração falha; a transição fica de pé e a segunda campanha
	// ainda é tentada.
	messageRepo.On("Create", ctx, mock.MatchedBy(func(m *entity.AIMessage) bool {
		return m.CampaignID == "camp-1"
	})).Return(errors.New("constraint violada"))
	messageRepo.On("Create", ctx, mock.MatchedBy(func(m *entity.AIMessage) bool {
		return m.CampaignID == "camp-2"
	})).Return(nil)

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		TargetStage: entity.StageQualificado,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StageQualificado, output.Lead.Stage)
	assert.Len(t, output.Messages, 1)
	assert.Equal(t, "camp-2", output.Messages[0].CampaignID)
	assert.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "Camp1")
}

func TestTransitionStageCampaignLookupFailureKeepsTransition(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, campaignRepo, _ := newTransitionUseCase()

	lead := &entity.Lead{ID: "lead-1", WorkspaceID: "ws-1", Name: "Ana", Stage: entity.StageBase}
	leadRepo.On("FindByID", ctx, "ws-1", "lead-1").Return(lead, nil)
	leadRepo.On("UpdateStage", ctx, "ws-1", "lead-1", entity.StageQualificado).Return(nil)
	campaignRepo.On("ListActiveByTrigger", ctx, "ws-1", entity.StageQualificado).Return(nil, errors.New("timeout"))

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		TargetStage: entity.StageQualificado,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StageQualificado, output.Lead.Stage)
	assert.Empty(t, output.Messages)
	assert.Len(t, output.Warnings, 1)
}

// Cenário completo da especificação do funil: Ana com cadastro completo,
// campanha ativa com gatilho em Lead Mapeado.
func TestTransitionStageAnaScenario(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, campaignRepo, messageRepo := newTransitionUseCase()

	lead := &entity.Lead{
		ID: "lead-ana", WorkspaceID: "ws-1",
		Name: "Ana", Company: "Acme", JobTitle: "CTO",
		Stage: entity.StageBase,
	}
	leadRepo.On("FindByID", ctx, "ws-1", "lead-ana").Return(lead, nil)
	leadRepo.On("UpdateStage", ctx, "ws-1", "lead-ana", entity.StageLeadMapeado).Return(nil)

	campaigns := []*entity.Campaign{
		{ID: "camp-1", WorkspaceID: "ws-1", Name: "Camp1", IsActive: true, TriggerStage: entity.StageLeadMapeado, OfferContext: "demo"},
	}
	campaignRepo.On("ListActiveByTrigger", ctx, "ws-1", entity.StageLeadMapeado).Return(campaigns, nil)
	messageRepo.On("Create", ctx, mock.Anything).Return(nil)

	output, err := uc.Execute(ctx, TransitionStageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-ana",
		TargetStage: entity.StageLeadMapeado,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StageLeadMapeado, output.Lead.Stage)
	assert.Len(t, output.Messages, 1)
	assert.Contains(t, output.Messages[0].Content, "Ana")
	assert.Contains(t, output.Messages[0].Content, "Acme")
}
