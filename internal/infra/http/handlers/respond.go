package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rafaelmv2/funil-sdr/internal/usecase"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError traduz erros de domínio em status HTTP. Erros crus de
// infraestrutura nunca vazam para o cliente.
func writeError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusInternalServerError
		switch domainErr.Code {
		case usecase.CodeNotFound:
			status = http.StatusNotFound
		case usecase.CodeValidation:
			status = http.StatusUnprocessableEntity
		case usecase.CodeAlreadySent:
			status = http.StatusConflict
		case usecase.CodePersistence:
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, ErrorResponse{Code: domainErr.Code, Message: domainErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "erro interno, tente novamente",
	})
}
