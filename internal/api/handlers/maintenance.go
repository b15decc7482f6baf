package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/garagem-inteligente/server/internal/api/middleware"
	"github.com/garagem-inteligente/server/internal/service"
)

type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

type MaintenanceRequest struct {
	Description string     `json:"descricaoServico"`
	Date        *time.Time `json:"data,omitempty"`
	Cost        float64    `json:"custo"`
	Odometer    *float64   `json:"quilometragem,omitempty"`
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	vehID, ok := vehicleID(w, r, "id")
	if !ok {
		return
	}

	var req MaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	input := service.MaintenanceInput{
		Description: req.Description,
		Cost:        req.Cost,
		Odometer:    req.Odometer,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	record, err := h.maintenanceService.Create(r.Context(), vehID, userID, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

func (h *MaintenanceHandler) ListForVehicle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	vehID, ok := vehicleID(w, r, "id")
	if !ok {
		return
	}

	records, err := h.maintenanceService.ListForVehicle(r.Context(), vehID, userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	recordID, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "Manutenção não encontrada.")
		return
	}

	if err := h.maintenanceService.Delete(r.Context(), recordID, userID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Manutenção removida com sucesso.")
}
