package usecase

import (
	"context"
	"strings"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

type CreateLeadInput struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	JobTitle    string `json:"job_title"`
	LinkedinURL string `json:"linkedin_url"`
	Sector      string `json:"sector"`
	Source      string `json:"source"`
	CampaignID  string `json:"campaign_id"`
}

type CreateLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewCreateLeadUseCase(leads entity.LeadRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads}
}

// Execute cria um lead na etapa de entrada do funil.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("o nome do lead é obrigatório")
	}

	lead, err := entity.NewLead(input.WorkspaceID, input.Name)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	lead.Email = strings.TrimSpace(input.Email)
	lead.Phone = strings.TrimSpace(input.Phone)
	lead.Company = strings.TrimSpace(input.Company)
	lead.JobTitle = strings.TrimSpace(input.JobTitle)
	lead.LinkedinURL = strings.TrimSpace(input.LinkedinURL)
	lead.Sector = strings.TrimSpace(input.Sector)
	lead.Source = strings.TrimSpace(input.Source)
	lead.CampaignID = input.CampaignID

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, NewPersistenceError("falha ao criar lead: " + err.Error())
	}

	return lead, nil
}
