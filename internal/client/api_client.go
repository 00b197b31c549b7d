package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

const defaultRequestTimeout = 30 * time.Second

// APIClient issues HTTP requests against deployed gateway endpoints and
// normalizes responses to structured data.
type APIClient struct {
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewAPIClient creates an APIClient. The per-request timeout is applied
// through the request context, not the underlying http.Client.
func NewAPIClient(logger *zap.Logger) *APIClient {
	return &APIClient{
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

// MakeRequest performs one HTTP request. A map body is JSON-encoded, a string
// body is sent as-is. Responses that do not decode as a JSON object are
// returned wrapped as {"text": <raw body>}.
func (c *APIClient) MakeRequest(ctx context.Context, opts types.RequestOptions) (map[string]any, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, opts.URL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	headers := opts.Headers
	if headers == nil {
		headers = map[string]string{"Content-Type": "application/json"}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if len(opts.Query) > 0 {
		q := req.URL.Query()
		for k, v := range opts.Query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("request failed",
			zap.String("method", method),
			zap.String("url", opts.URL),
			zap.Error(err))
		return nil, fmt.Errorf("request to %s failed: %w", opts.URL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.Logger.Error("request returned error status",
			zap.String("method", method),
			zap.String("url", opts.URL),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("request to %s failed with status %d: %s", opts.URL, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	c.Logger.Info("request completed",
		zap.String("method", method),
		zap.String("url", opts.URL),
		zap.Int("status", resp.StatusCode))

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return map[string]any{"text": string(raw)}, nil
	}
	return result, nil
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}
