package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
	"github.com/rafaelmv2/funil-sdr/internal/infra/http/middleware"
	"github.com/rafaelmv2/funil-sdr/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	TransitionUC *usecase.TransitionStageUseCase
	LeadRepo     entity.LeadRepositoryInterface
}

func NewLeadHandler(
	createLeadUC *usecase.CreateLeadUseCase,
	transitionUC *usecase.TransitionStageUseCase,
	leadRepo entity.LeadRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC: createLeadUC,
		TransitionUC: transitionUC,
		LeadRepo:     leadRepo,
	}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	input.WorkspaceID = chi.URLParam(r, "workspaceID")

	lead, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

type TransitionRequest struct {
	Stage entity.Stage `json:"stage"`
}

// HandleTransition atende a intenção "mover lead X para etapa Y" do quadro.
func (h *LeadHandler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.TransitionUC.Execute(r.Context(), usecase.TransitionStageInput{
		WorkspaceID: chi.URLParam(r, "workspaceID"),
		LeadID:      chi.URLParam(r, "leadID"),
		TargetStage: req.Stage,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordTransition(string(output.PreviousStage), string(output.Lead.Stage))
	for range output.Messages {
		middleware.RecordMessageGenerated("trigger")
	}
	for range output.Warnings {
		middleware.RecordTriggerFailure()
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleBoard devolve os leads do workspace agrupados por etapa do funil.
func (h *LeadHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.ListByWorkspace(r.Context(), chi.URLParam(r, "workspaceID"))
	if err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao carregar leads"))
		return
	}

	writeJSON(w, http.StatusOK, usecase.GroupLeadsByStage(leads))
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	leadID := chi.URLParam(r, "leadID")

	lead, err := h.LeadRepo.FindByID(r.Context(), workspaceID, leadID)
	if err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao buscar lead"))
		return
	}
	if lead == nil {
		writeError(w, usecase.NewNotFoundError("lead não encontrado"))
		return
	}

	// A etapa não muda por aqui: edição de campos e transição são operações
	// distintas, e a transição passa pelo motor com suas regras.
	stage := lead.Stage
	if err := json.NewDecoder(r.Body).Decode(lead); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	lead.ID = leadID
	lead.WorkspaceID = workspaceID
	lead.Stage = stage

	if err := lead.Validate(); err != nil {
		writeError(w, usecase.NewValidationError(err.Error()))
		return
	}

	if err := h.LeadRepo.Update(r.Context(), lead); err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao atualizar lead"))
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	leadID := chi.URLParam(r, "leadID")

	if err := h.LeadRepo.Delete(r.Context(), workspaceID, leadID); err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao excluir lead"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
