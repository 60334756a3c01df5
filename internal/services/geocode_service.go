package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/config"

	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const geocoderName = "geocoder"

// maxGeocodeBody bounds how much of an upstream response is buffered.
const maxGeocodeBody = 1 << 20

// GeocodeResult is an upstream reverse-geocoding response, passed through
// untouched.
type GeocodeResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type GeocodeService interface {
	Reverse(ctx context.Context, lat, lon float64) (*GeocodeResult, error)
}

type geocodeService struct {
	config     config.GeocodeConfig
	logger     *logrus.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*GeocodeResult]
}

func NewGeocodeService(cfg config.GeocodeConfig, logger *logrus.Logger) GeocodeService {
	s := &geocodeService{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
	}

	s.breaker = gobreaker.NewCircuitBreaker[*GeocodeResult](gobreaker.Settings{
		Name:        geocoderName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Geocoder circuit breaker changed state")
		},
	})

	return s
}

func (s *geocodeService) Reverse(ctx context.Context, lat, lon float64) (*GeocodeResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Upstream(geocoderName, fmt.Errorf("rate limit wait: %w", err))
	}

	result, err := s.breaker.Execute(func() (*GeocodeResult, error) {
		return s.fetch(ctx, lat, lon)
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"lat": lat,
			"lon": lon,
		}).Error("Reverse geocoding failed")
		return nil, apperrors.Upstream(geocoderName, err)
	}
	return result, nil
}

func (s *geocodeService) fetch(ctx context.Context, lat, lon float64) (*GeocodeResult, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("format", "json")
	endpoint := strings.TrimSuffix(s.config.BaseURL, "/") + "/reverse?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach geocoder: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGeocodeBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read geocoder response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, string(body))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return &GeocodeResult{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}
