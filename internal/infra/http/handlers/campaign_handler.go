package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
	"github.com/rafaelmv2/funil-sdr/internal/usecase"
)

type CampaignHandler struct {
	CampaignRepo entity.CampaignRepositoryInterface
}

func NewCampaignHandler(campaignRepo entity.CampaignRepositoryInterface) *CampaignHandler {
	return &CampaignHandler{CampaignRepo: campaignRepo}
}

type CampaignRequest struct {
	Name         string       `json:"name"`
	OfferContext string       `json:"offer_context"`
	AIPrompt     string       `json:"ai_prompt"`
	IsActive     *bool        `json:"is_active"`
	TriggerStage entity.Stage `json:"trigger_stage"`
}

func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := entity.NewCampaign(
		chi.URLParam(r, "workspaceID"),
		req.Name,
		req.OfferContext,
		req.AIPrompt,
		req.TriggerStage,
	)
	if err != nil {
		writeError(w, usecase.NewValidationError(err.Error()))
		return
	}
	if req.IsActive != nil {
		campaign.IsActive = *req.IsActive
	}

	if err := h.CampaignRepo.Create(r.Context(), campaign); err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao criar campanha"))
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.CampaignRepo.ListByWorkspace(r.Context(), chi.URLParam(r, "workspaceID"))
	if err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao carregar campanhas"))
		return
	}

	if campaigns == nil {
		campaigns = []*entity.Campaign{}
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *CampaignHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	campaignID := chi.URLParam(r, "campaignID")

	campaign, err := h.CampaignRepo.FindByID(r.Context(), workspaceID, campaignID)
	if err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao buscar campanha"))
		return
	}
	if campaign == nil {
		writeError(w, usecase.NewNotFoundError("campanha não encontrada"))
		return
	}

	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name != "" {
		campaign.Name = req.Name
	}
	campaign.OfferContext = req.OfferContext
	campaign.AIPrompt = req.AIPrompt
	campaign.TriggerStage = req.TriggerStage
	if req.IsActive != nil {
		campaign.IsActive = *req.IsActive
	}

	if err := campaign.Validate(); err != nil {
		writeError(w, usecase.NewValidationError(err.Error()))
		return
	}

	if err := h.CampaignRepo.Update(r.Context(), campaign); err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao atualizar campanha"))
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.CampaignRepo.Delete(
		r.Context(),
		chi.URLParam(r, "workspaceID"),
		chi.URLParam(r, "campaignID"),
	)
	if err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao excluir campanha"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
