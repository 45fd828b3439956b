package docintel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/common"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/service"
)

// Client calls the document-understanding service over HTTP. Analysis is
// asynchronous: submitting a document returns an operation URL which is then
// polled with a bounded attempt cap and fixed delay.
type Client struct {
	endpoint   string
	apiKey     string
	modelID    string
	httpClient *http.Client
	retry      service.RetryOptions
}

// NewClient creates a document analysis client.
func NewClient(endpoint, apiKey, modelID string, retry service.RetryOptions) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("%w: analysis endpoint", common.ErrMissingConfig)
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: analysis API key", common.ErrMissingConfig)
	}
	if modelID == "" {
		modelID = "prebuilt-layout"
	}

	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		modelID:  modelID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: retry,
	}, nil
}

// Analyze submits raw document bytes and polls until the analysis reaches a
// terminal state. Failure and timeout both surface as hard errors with a
// descriptive message; the caller never sees a partial result.
func (c *Client) Analyze(ctx context.Context, document []byte) (*AnalyzeResult, error) {
	operationURL, err := c.begin(ctx, document)
	if err != nil {
		return nil, err
	}

	var result *AnalyzeResult
	pollErr := common.WithRetry(ctx, func() error {
		resp, err := c.pollOnce(ctx, operationURL)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}

		switch resp.Status {
		case StatusSucceeded:
			result = resp.AnalyzeResult
			return nil
		case StatusFailed:
			msg := "analysis reported failure"
			if resp.Error != nil {
				msg = resp.Error.Message
			}
			return &common.RetryableError{
				Err:       fmt.Errorf("%w: %s", common.ErrAnalysisFailed, msg),
				Retryable: false,
			}
		default:
			return &common.RetryableError{
				Err:       fmt.Errorf("analysis still %s", resp.Status),
				Retryable: true,
			}
		}
	}, c.retry)

	if pollErr != nil {
		if errors.Is(pollErr, common.ErrMaxAttempts) {
			return nil, fmt.Errorf("%w: %v", common.ErrAnalysisTimeout, pollErr)
		}
		return nil, pollErr
	}
	if result == nil {
		return nil, fmt.Errorf("%w: succeeded with empty result", common.ErrAnalysisFailed)
	}
	return result, nil
}

// begin submits the document and returns the operation URL to poll.
func (c *Client) begin(ctx context.Context, document []byte) (string, error) {
	body, err := json.Marshal(map[string]string{
		"base64Source": base64.StdEncoding.EncodeToString(document),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis request: %w", err)
	}

	url := fmt.Sprintf("%s/documentModels/%s:analyze?api-version=2024-11-30", c.endpoint, c.modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit document for analysis: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: submit returned %d - %s", common.ErrAnalysisFailed, resp.StatusCode, string(payload))
	}

	operationURL := resp.Header.Get("Operation-Location")
	if operationURL == "" {
		return "", fmt.Errorf("%w: no operation location in response", common.ErrAnalysisFailed)
	}
	return operationURL, nil
}

// pollOnce fetches the current state of an analysis operation.
func (c *Client) pollOnce(ctx context.Context, operationURL string) (*AnalyzeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create poll request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to poll analysis operation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("poll returned %d - %s", resp.StatusCode, string(payload))
	}

	var parsed AnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	return &parsed, nil
}
