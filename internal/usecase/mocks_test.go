package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
	"github.com/rafaelmv2/funil-sdr/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, workspaceID, id string) (*entity.Lead, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Lead, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStage(ctx context.Context, workspaceID, id string, stage entity.Stage) error {
	args := m.Called(ctx, workspaceID, id, stage)
	return args.Error(0)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

// MockCampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, workspaceID, id string) (*entity.Campaign, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Campaign, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListActiveByTrigger(ctx context.Context, workspaceID string, stage entity.Stage) ([]*entity.Campaign, error) {
	args := m.Called(ctx, workspaceID, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

// MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.AIMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, workspaceID, id string) (*entity.AIMessage, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AIMessage), args.Error(1)
}

func (m *MockMessageRepository) ListByLead(ctx context.Context, workspaceID, leadID string) ([]*entity.AIMessage, error) {
	args := m.Called(ctx, workspaceID, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AIMessage), args.Error(1)
}

func (m *MockMessageRepository) MarkSent(ctx context.Context, workspaceID, id string, sentAt time.Time) error {
	args := m.Called(ctx, workspaceID, id, sentAt)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

// MockDispatchProducer
type MockDispatchProducer struct {
	mock.Mock
}

func (m *MockDispatchProducer) PublishDispatch(ctx context.Context, payload queue.DispatchPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// fixedPicker fixa a escolha de template nos testes.
func fixedPicker(index int) Picker {
	return func(n int) int { return index % n }
}
