package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/garagem-inteligente/server/internal/api/middleware"
	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/garagem-inteligente/server/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
}

func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

type VehicleRequest struct {
	Plate string `json:"placa"`
	Make  string `json:"marca"`
	Model string `json:"modelo"`
	Year  int    `json:"ano"`
	Color string `json:"cor"`
	Type  string `json:"tipo"`
}

type ShareRequest struct {
	Email string `json:"email"`
}

type VehicleResponse struct {
	ID         uuid.UUID             `json:"id"`
	Plate      string                `json:"placa"`
	Make       string                `json:"marca"`
	Model      string                `json:"modelo"`
	Year       int                   `json:"ano"`
	Color      string                `json:"cor,omitempty"`
	Type       domain.VehicleType    `json:"tipo"`
	Owner      domain.OwnerSummary   `json:"owner"`
	SharedWith []domain.OwnerSummary `json:"sharedWith"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func toVehicleResponse(v *domain.Vehicle) VehicleResponse {
	shared := make([]domain.OwnerSummary, 0, len(v.SharedWith))
	for i := range v.SharedWith {
		shared = append(shared, v.SharedWith[i].Summary())
	}
	return VehicleResponse{
		ID:         v.ID,
		Plate:      v.Plate,
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		Color:      v.Color,
		Type:       v.Type,
		Owner:      v.Owner.Summary(),
		SharedWith: shared,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func (req VehicleRequest) toInput() service.VehicleInput {
	return service.VehicleInput{
		Plate: req.Plate,
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
		Color: req.Color,
		Type:  domain.VehicleType(req.Type),
	}
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// vehicleID parses a vehicle id route parameter. An unparseable id
// behaves like a vehicle that does not exist.
func vehicleID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuidParam(r, param)
	if err != nil {
		respondError(w, http.StatusNotFound, "Veículo não encontrado.")
		return uuid.Nil, false
	}
	return id, true
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	var req VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	vehicle, err := h.vehicleService.Create(r.Context(), userID, req.toInput())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toVehicleResponse(vehicle))
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	vehicles, err := h.vehicleService.ListVisible(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, toVehicleResponse(v))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	id, ok := vehicleID(w, r, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.Get(r.Context(), id, userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	id, ok := vehicleID(w, r, "id")
	if !ok {
		return
	}

	var req VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	vehicle, err := h.vehicleService.Update(r.Context(), id, userID, req.toInput())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	id, ok := vehicleID(w, r, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(r.Context(), id, userID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Veículo removido com sucesso.")
}

func (h *VehicleHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	id, ok := vehicleID(w, r, "id")
	if !ok {
		return
	}

	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "O e-mail do destinatário é obrigatório.")
		return
	}

	if err := h.vehicleService.Share(r.Context(), id, userID, req.Email); err != nil {
		respondDomainError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Veículo compartilhado com sucesso.")
}
