package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

func newGenerateUseCase() (*GenerateMessageUseCase, *MockLeadRepository, *MockCampaignRepository, *MockMessageRepository) {
	leadRepo := new(MockLeadRepository)
	campaignRepo := new(MockCampaignRepository)
	messageRepo := new(MockMessageRepository)

	uc := NewGenerateMessageUseCase(leadRepo, campaignRepo, messageRepo, NewMessageRenderer(fixedPicker(0)))
	return uc, leadRepo, campaignRepo, messageRepo
}

func TestGenerateMessageWorksWithInactiveCampaign(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, campaignRepo, messageRepo := newGenerateUseCase()

	lead := &entity.Lead{ID: "lead-1", WorkspaceID: "ws-1", Name: "Ana", Company: "Acme", Stage: entity.StageBase}
	// Geração manual não exige campanha ativa nem gatilho compatível.
	campaign := &entity.Campaign{ID: "camp-1", WorkspaceID: "ws-1", Name: "Camp1", IsActive: false}

	leadRepo.On("FindByID", ctx, "ws-1", "lead-1").Return(lead, nil)
	campaignRepo.On("FindByID", ctx, "ws-1", "camp-1").Return(campaign, nil)
	messageRepo.On("Create", ctx, mock.Anything).Return(nil)

	message, err := uc.Execute(ctx, GenerateMessageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		CampaignID:  "camp-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "lead-1", message.LeadID)
	assert.Equal(t, "camp-1", message.CampaignID)
	assert.Contains(t, message.Content, "Ana")
	assert.Contains(t, message.Content, "Acme")
	messageRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestGenerateMessageCampaignFromAnotherWorkspace(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, campaignRepo, messageRepo := newGenerateUseCase()

	lead := &entity.Lead{ID: "lead-1", WorkspaceID: "ws-1", Name: "Ana", Stage: entity.StageBase}
	leadRepo.On("FindByID", ctx, "ws-1", "lead-1").Return(lead, nil)
	// A busca escopada por workspace não encontra a campanha do outro tenant.
	campaignRepo.On("FindByID", ctx, "ws-1", "camp-externa").Return(nil, nil)

	message, err := uc.Execute(ctx, GenerateMessageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-1",
		CampaignID:  "camp-externa",
	})

	assert.Nil(t, message)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, domainErr.Code)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerateMessageLeadNotFound(t *testing.T) {
	ctx := context.Background()
	uc, leadRepo, _, _ := newGenerateUseCase()

	leadRepo.On("FindByID", ctx, "ws-1", "lead-404").Return(nil, nil)

	message, err := uc.Execute(ctx, GenerateMessageInput{
		WorkspaceID: "ws-1",
		LeadID:      "lead-404",
		CampaignID:  "camp-1",
	})

	assert.Nil(t, message)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, domainErr.Code)
}
