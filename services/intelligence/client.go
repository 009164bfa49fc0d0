// File: services/intelligence/client.go
package intelligence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"barberbook/models"
)

// NLPClient talks to the external NLP backend over HTTP. All natural
// language understanding lives there; this side only proxies.
type NLPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNLPClient builds a client for the backend at baseURL.
func NewNLPClient(baseURL string) *NLPClient {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	return &NLPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *NLPClient) endpoint(p string) string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL + p
	}
	u.Path = path.Join(u.Path, p)
	return u.String()
}

func (c *NLPClient) post(ctx context.Context, p string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("nlp: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(p), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("nlp: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nlp: %s unreachable: %w", p, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nlp: %s returned status %d", p, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("nlp: decode %s response: %w", p, err)
	}
	return nil
}

// Health probes the backend's liveness endpoint.
func (c *NLPClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/health"), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nlp: health unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nlp: health returned status %d", resp.StatusCode)
	}
	return nil
}

// SendMessage forwards a user message and returns the assistant's reply
// together with any extracted appointment draft.
func (c *NLPClient) SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var out models.ChatResponse
	if err := c.post(ctx, "/chat/message", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractAppointment asks the backend to summarize the conversation into a
// structured appointment draft.
func (c *NLPClient) ExtractAppointment(ctx context.Context, conversationID uint) (*models.ExtractResponse, error) {
	body := map[string]uint{"conversation_id": conversationID}
	var out models.ExtractResponse
	if err := c.post(ctx, "/chat/extract-appointment", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateAppointment checks a draft's fields against the backend's rules.
func (c *NLPClient) ValidateAppointment(ctx context.Context, data models.AppointmentData) (*models.ValidateResponse, error) {
	body := map[string]models.AppointmentData{"appointment_data": data}
	var out models.ValidateResponse
	if err := c.post(ctx, "/chat/validate-appointment", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset clears the backend's conversational context.
func (c *NLPClient) Reset(ctx context.Context, conversationID uint) error {
	body := map[string]uint{"conversation_id": conversationID}
	return c.post(ctx, "/chat/reset", body, nil)
}
