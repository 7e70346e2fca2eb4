package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrTimeout = errors.New("text generation timed out")
	ErrService = errors.New("text generation service failure")
)

// Generator is the narrow contract the rest of the service sees. Tests
// substitute a deterministic stub; nothing outside this package knows the
// wire shape.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIURL      string
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

var _ Generator = (*Client)(nil)

type Client struct {
	logger *zap.Logger
	cfg    Config
	client *http.Client
}

func NewClient(logger *zap.Logger, cfg Config, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		logger: logger,
		cfg:    cfg,
		client: client,
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	NumPredict  int     `json:"num_predict"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			NumPredict:  c.cfg.MaxTokens,
			Temperature: c.cfg.Temperature,
			TopP:        c.cfg.TopP,
		},
	})

	if err != nil {
		return "", fmt.Errorf("can not serialize generation request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/api/generate", bytes.NewReader(body))

	if err != nil {
		return "", fmt.Errorf("can not build generation request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(request)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.CheckError(err, c.logger, "generation timed out", zap.Duration("timeout", c.cfg.Timeout))
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.cfg.Timeout)
		}
		logger.CheckError(err, c.logger, "generation request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %s", ErrService, err)
	}

	defer response.Body.Close()

	if response.StatusCode/100 != 2 {
		logger.CheckError(ErrService, c.logger, "generation endpoint returned non-2xx",
			zap.Int("status", response.StatusCode))
		return "", fmt.Errorf("%w: status %d", ErrService, response.StatusCode)
	}

	var decoded generateResponse
	if err = json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: can not decode response: %s", ErrService, err)
	}

	return decoded.Response, nil
}
