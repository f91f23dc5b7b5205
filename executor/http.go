package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// HTTPConfig configures an HTTPExecutor. TokenURL, ClientID and ClientSecret
// are optional; when TokenURL is set requests carry an OAuth2
// client-credentials bearer token.
type HTTPConfig struct {
	URL          string
	Timeout      time.Duration
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// HTTPExecutor posts execution requests to a remote strategy service
type HTTPExecutor struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

type executeResponse struct {
	ExecutionRef string `json:"execution_ref"`
	Error        string `json:"error,omitempty"`
}

// NewHTTPExecutor creates an HTTP executor
func NewHTTPExecutor(cfg HTTPConfig, logger *zap.Logger) (*HTTPExecutor, error) {
	if cfg.URL == "" {
		return nil, errors.New("executor URL is required")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("executor timeout must be positive")
	}

	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.TokenURL != "" {
		if cfg.ClientID == "" || cfg.ClientSecret == "" {
			return nil, errors.New("client ID and secret are required with a token URL")
		}
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		// Token requests go through a client with the same timeout
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: cfg.Timeout})
		client = cc.Client(ctx)
		client.Timeout = cfg.Timeout
	}

	return &HTTPExecutor{url: cfg.URL, client: client, logger: logger}, nil
}

// Execute posts the request and returns the execution reference from the response
func (e *HTTPExecutor) Execute(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode execution request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build execution request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("execution request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("failed to read execution response: %w", err)
	}

	e.logger.Debug("executor responded",
		zap.Int64("allocation_id", req.AllocationID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	var decoded executeResponse
	_ = json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := decoded.Error
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return "", fmt.Errorf("executor returned %d: %s", resp.StatusCode, msg)
	}
	if decoded.ExecutionRef == "" {
		return "", errors.New("executor response has no execution_ref")
	}

	return decoded.ExecutionRef, nil
}
