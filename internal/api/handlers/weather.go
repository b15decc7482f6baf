package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/garagem-inteligente/server/internal/service"
	"github.com/go-chi/chi/v5"
)

type WeatherHandler struct {
	weatherService *service.WeatherService
}

func NewWeatherHandler(weatherService *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// Forecast proxies the third-party forecast API. Upstream failures pass
// through with their status code preserved.
func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "cidade")
	if city == "" {
		respondError(w, http.StatusBadRequest, "A cidade é obrigatória.")
		return
	}

	payload, err := h.weatherService.Forecast(r.Context(), city)
	if err != nil {
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			respondError(w, upstream.StatusCode, "Falha ao buscar previsão: "+upstream.Message)
			return
		}
		if errors.Is(err, service.ErrWeatherKeyMissing) {
			respondError(w, http.StatusInternalServerError, "Chave da API de clima não configurada no servidor.")
			return
		}
		log.Printf("ERROR [WeatherHandler.Forecast] %v", err)
		respondError(w, http.StatusInternalServerError, "Erro ao conectar com a API de clima.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
