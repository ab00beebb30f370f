package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
	"github.com/rafaelmv2/funil-sdr/internal/usecase"
)

type WorkspaceHandler struct {
	WorkspaceRepo entity.WorkspaceRepositoryInterface
}

func NewWorkspaceHandler(workspaceRepo entity.WorkspaceRepositoryInterface) *WorkspaceHandler {
	return &WorkspaceHandler{WorkspaceRepo: workspaceRepo}
}

type CreateWorkspaceRequest struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

// HandleCreate cria o workspace com o criador como membro admin.
func (h *WorkspaceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	workspace, err := entity.NewWorkspace(req.Name, req.UserID)
	if err != nil {
		writeError(w, usecase.NewValidationError(err.Error()))
		return
	}

	if err := h.WorkspaceRepo.Create(r.Context(), workspace); err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao criar workspace"))
		return
	}

	writeJSON(w, http.StatusCreated, workspace)
}

// HandleList devolve os workspaces do usuário. Nenhuma seleção automática:
// o cliente escolhe explicitamente qual usar.
func (h *WorkspaceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, usecase.NewValidationError("user_id é obrigatório"))
		return
	}

	workspaces, err := h.WorkspaceRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao carregar workspaces"))
		return
	}

	if workspaces == nil {
		workspaces = []*entity.Workspace{}
	}
	writeJSON(w, http.StatusOK, workspaces)
}
