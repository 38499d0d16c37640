package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"bobTheBar/pkg/logger"

	gobreaker "github.com/sony/gobreaker/v2"
)

type DeepSeekConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration

	// Breaker settings; zero values fall back to the defaults below.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

type embeddingRequest struct {
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

type DeepSeekRepository struct {
	cfg     DeepSeekConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]float64]
}

func NewDeepSeekRepository(cfg DeepSeekConfig) *DeepSeekRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	threshold := cfg.FailureThreshold
	breaker := gobreaker.NewCircuitBreaker[[]float64](gobreaker.Settings{
		Name:        "deepseek-embedding",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &DeepSeekRepository{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: breaker,
	}
}

// GenerateEmbedding posts the input text to the embedding endpoint and
// returns the first vector of the response.
func (r *DeepSeekRepository) GenerateEmbedding(ctx context.Context, input string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return r.breaker.Execute(func() ([]float64, error) {
		return r.call(ctx, input)
	})
}

// State reports the breaker state for health output.
func (r *DeepSeekRepository) State() string {
	return r.breaker.State().String()
}

func (r *DeepSeekRepository) call(ctx context.Context, input string) ([]float64, error) {
	payload, err := json.Marshal(embeddingRequest{Input: input})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding api returned status %d", res.StatusCode)
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedding response: %w", err)
	}

	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, errors.New("embedding response has no data")
	}

	return parsed.Data[0].Embedding, nil
}
