package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/garagem-inteligente/server/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondDomainError maps the shared domain error taxonomy to HTTP.
// Validation -> 400, duplicate keys -> 409, forbidden -> 403, not found
// -> 404; anything else is a 500 with no internal detail.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPlateExists):
		respondError(w, http.StatusConflict, "Veículo com esta placa já existe.")
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, http.StatusForbidden, "Você não tem permissão para esta ação.")
	case errors.Is(err, domain.ErrVehicleNotFound):
		respondError(w, http.StatusNotFound, "Veículo não encontrado.")
	case errors.Is(err, domain.ErrMaintenanceNotFound):
		respondError(w, http.StatusNotFound, "Manutenção não encontrada.")
	case errors.Is(err, domain.ErrRecipientNotFound):
		respondError(w, http.StatusNotFound, "Usuário destinatário não encontrado.")
	case errors.Is(err, domain.ErrSelfShare):
		respondError(w, http.StatusBadRequest, "Você não pode compartilhar um veículo consigo mesmo.")
	default:
		log.Printf("ERROR [handlers] unexpected error: %v", err)
		respondError(w, http.StatusInternalServerError, "Erro interno do servidor.")
	}
}
