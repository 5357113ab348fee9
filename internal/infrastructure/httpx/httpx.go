package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"frankfurter/internal/domain"
)

// maxErrorBody caps how much of a failed response is read looking for a reason.
const maxErrorBody = 64 << 10

// Client performs JSON GET requests and maps failures to domain.CallFailedError.
// It never retries.
type Client struct {
	HTTP    *http.Client
	Headers map[string]string
}

// GetJSON issues a GET to rawURL with the default headers overlaid by extra and
// decodes a 2xx body into out. The response status code is returned when known.
func (c *Client) GetJSON(ctx context.Context, rawURL string, extra map[string]string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("httpx: create request: %w", err)
	}
	for k, v := range MergeHeaders(c.Headers, extra) {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, domain.NewCallFailed(0, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, domain.NewCallFailed(resp.StatusCode, Reason(resp, body), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, domain.NewCallFailed(resp.StatusCode, "read response body", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, domain.NewCallFailed(resp.StatusCode, "invalid response body", err)
	}
	return resp.StatusCode, nil
}

// MergeHeaders returns base overlaid by extra; extra wins on key collision.
func MergeHeaders(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Reason picks the failure reason: status-line phrase, then a JSON "message"
// field, then domain.ReasonNotFound.
func Reason(resp *http.Response, body []byte) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase != "" {
		return phrase
	}
	var msg struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &msg) == nil && msg.Message != "" {
		return msg.Message
	}
	return domain.ReasonNotFound
}
