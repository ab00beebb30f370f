package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
	"github.com/rafaelmv2/funil-sdr/internal/infra/http/middleware"
	"github.com/rafaelmv2/funil-sdr/internal/usecase"
)

type MessageHandler struct {
	GenerateUC  *usecase.GenerateMessageUseCase
	SendUC      *usecase.SendMessageUseCase
	MessageRepo entity.AIMessageRepositoryInterface
}

func NewMessageHandler(
	generateUC *usecase.GenerateMessageUseCase,
	sendUC *usecase.SendMessageUseCase,
	messageRepo entity.AIMessageRepositoryInterface,
) *MessageHandler {
	return &MessageHandler{
		GenerateUC:  generateUC,
		SendUC:      sendUC,
		MessageRepo: messageRepo,
	}
}

type GenerateMessageRequest struct {
	CampaignID string `json:"campaign_id"`
}

func (h *MessageHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	message, err := h.GenerateUC.Execute(r.Context(), usecase.GenerateMessageInput{
		WorkspaceID: chi.URLParam(r, "workspaceID"),
		LeadID:      chi.URLParam(r, "leadID"),
		CampaignID:  req.CampaignID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordMessageGenerated("manual")
	writeJSON(w, http.StatusCreated, message)
}

func (h *MessageHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	output, err := h.SendUC.Execute(r.Context(), usecase.SendMessageInput{
		WorkspaceID: chi.URLParam(r, "workspaceID"),
		MessageID:   chi.URLParam(r, "messageID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordMessageSent()
	writeJSON(w, http.StatusOK, output)
}

func (h *MessageHandler) HandleListByLead(w http.ResponseWriter, r *http.Request) {
	messages, err := h.MessageRepo.ListByLead(
		r.Context(),
		chi.URLParam(r, "workspaceID"),
		chi.URLParam(r, "leadID"),
	)
	if err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao carregar mensagens"))
		return
	}

	if messages == nil {
		messages = []*entity.AIMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.MessageRepo.Delete(
		r.Context(),
		chi.URLParam(r, "workspaceID"),
		chi.URLParam(r, "messageID"),
	)
	if err != nil {
		writeError(w, usecase.NewPersistenceError("falha ao excluir mensagem"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
