package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleSDR   = "sdr"
)

// Workspace é a fronteira de tenant: agrupa leads, campanhas e membros.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkspaceMember struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type WorkspaceRepositoryInterface interface {
	// Create grava o workspace e o criador como membro admin na mesma transação.
	Create(ctx context.Context, workspace *Workspace) error
	FindByID(ctx context.Context, id string) (*Workspace, error)
	// ListByUser devolve os workspaces em que o usuário é membro, mais recentes
	// primeiro. Nenhuma seleção automática acontece aqui: o cliente escolhe.
	ListByUser(ctx context.Context, userID string) ([]*Workspace, error)
	FindMember(ctx context.Context, workspaceID, userID string) (*WorkspaceMember, error)
}

func NewWorkspace(name, createdBy string) (*Workspace, error) {
	workspace := &Workspace{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if workspace.Name == "" {
		return nil, errors.New("name is required")
	}

	return workspace, nil
}
