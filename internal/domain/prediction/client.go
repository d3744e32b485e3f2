// Package prediction proxies the clinic's machine-learning sidecar: a chat
// assistant and a disease-progression model. The sidecar speaks a small
// JSON-over-HTTP protocol and can be slow or down; failures surface as
// transient errors rather than taking the API down with it.
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clinic/clinic/internal/platform/errs"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Chat sends a free-text message to the chatbot and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	if err := c.post(ctx, "/LLMchatbot", map[string]string{"message": message}, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

// PredictProgression asks the model for the likely progression of the
// patient's condition given a free-form clinical summary.
func (c *Client) PredictProgression(ctx context.Context, patientData string) (string, error) {
	var out struct {
		PredictedDisease string `json:"predicted_disease"`
	}
	if err := c.post(ctx, "/future_prediction", map[string]string{"patient_data": patientData}, &out); err != nil {
		return "", err
	}
	return out.PredictedDisease, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Internal("encode prediction request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.Internal("build prediction request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Transient("prediction service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.Transient(fmt.Sprintf("prediction service returned %d", resp.StatusCode), nil)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Transient("read prediction response", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Transient("malformed prediction response", err)
	}
	return nil
}
