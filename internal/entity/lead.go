package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead é um contato prospectado dentro de um workspace.
// Campos opcionais usam string vazia como "ausente"; o repositório persiste NULL.
type Lead struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	JobTitle    string    `json:"job_title,omitempty"`
	LinkedinURL string    `json:"linkedin_url,omitempty"`
	Sector      string    `json:"sector,omitempty"`
	Source      string    `json:"source,omitempty"`
	CampaignID  string    `json:"campaign_id,omitempty"`
	Stage       Stage     `json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, workspaceID, id string) (*Lead, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*Lead, error)
	UpdateStage(ctx context.Context, workspaceID, id string, stage Stage) error
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, workspaceID, id string) error
}

// NewLead cria um lead na etapa de entrada do funil.
func NewLead(workspaceID, name string) (*Lead, error) {
	lead := &Lead{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Name:        strings.TrimSpace(name),
		Stage:       EntryStage(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("name is required")
	}
	if l.WorkspaceID == "" {
		return errors.New("workspace_id is required")
	}
	if !IsValidStage(l.Stage) {
		return errors.New("stage is invalid")
	}
	return nil
}

// HasCompany informa se o campo empresa está preenchido de fato (ignora espaços).
func (l *Lead) HasCompany() bool {
	return strings.TrimSpace(l.Company) != ""
}

func (l *Lead) HasJobTitle() bool {
	return strings.TrimSpace(l.JobTitle) != ""
}
