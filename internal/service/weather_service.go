package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/garagem-inteligente/server/internal/config"
	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/garagem-inteligente/server/internal/repository"
)

var ErrWeatherKeyMissing = errors.New("weather API key not configured")

// UpstreamError carries the forecast provider's status and message
// through to the client untouched.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream forecast API returned %d: %s", e.StatusCode, e.Message)
}

type WeatherService struct {
	forecastRepo repository.ForecastRepository
	cfg          *config.Config
	httpClient   *http.Client
}

func NewWeatherService(forecastRepo repository.ForecastRepository, cfg *config.Config) *WeatherService {
	return &WeatherService{
		forecastRepo: forecastRepo,
		cfg:          cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Forecast returns the 5-day forecast payload for a city, serving from
// the per-city cache when it is still fresh.
func (s *WeatherService) Forecast(ctx context.Context, city string) (json.RawMessage, error) {
	if s.cfg.OpenWeatherAPIKey == "" {
		return nil, ErrWeatherKeyMissing
	}

	key := strings.ToLower(strings.TrimSpace(city))
	if cache, err := s.forecastRepo.Get(ctx, key); err == nil && cache.Fresh(s.cfg.ForecastCacheTTL, time.Now()) {
		return json.RawMessage(cache.Payload), nil
	}

	forecastURL := fmt.Sprintf("%s/data/2.5/forecast?q=%s&appid=%s&units=metric&lang=pt_br",
		s.cfg.OpenWeatherBaseURL, url.QueryEscape(city), s.cfg.OpenWeatherAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, forecastURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach forecast API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var upstream struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &upstream)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: upstream.Message}
	}

	cache := &domain.ForecastCache{
		City:      key,
		Payload:   body,
		FetchedAt: time.Now(),
	}
	if err := s.forecastRepo.Upsert(ctx, cache); err != nil {
		// Cache write failure is not worth failing the request over.
		return json.RawMessage(body), nil
	}

	return json.RawMessage(body), nil
}
