package gen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to a Gemini-style generation endpoint. Prompt wording and
// schema shapes live with the callers; this adapter only moves bytes and
// classifies failures into the package's error taxonomy.
type Client struct {
	BaseURL    string
	APIKey     string
	TextModel  string
	ImageModel string
	HTTP       *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		TextModel:  "gemini-3-pro-preview",
		ImageModel: "gemini-2.5-flash-image",
		HTTP:       &http.Client{Timeout: 60 * time.Second},
	}
}

type generateRequest struct {
	Prompt       string `json:"prompt"`
	ResponseMIME string `json:"response_mime_type,omitempty"`
	SourceImage  string `json:"source_image,omitempty"` // base64
}

type generateResponse struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"` // base64
}

func (c *Client) post(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("gen: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:generate", c.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gen: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-Goog-Api-Key", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status 429", ErrThrottled)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("gen: status %d: %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrMalformed, err)
	}
	return &out, nil
}

// GenerateJSON asks the text model for a schema-constrained JSON
// response and decodes it into out. A parse failure is Malformed, an
// empty text part is Empty.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, out any) error {
	resp, err := c.post(ctx, c.TextModel, generateRequest{
		Prompt:       prompt,
		ResponseMIME: "application/json",
	})
	if err != nil {
		return err
	}
	if resp.Text == "" {
		return ErrEmpty
	}
	if err := json.Unmarshal([]byte(resp.Text), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// GenerateImage asks the image model for a binary image. source, when
// non-nil, is sent along for edit-style regeneration.
func (c *Client) GenerateImage(ctx context.Context, prompt string, source []byte) ([]byte, error) {
	req := generateRequest{Prompt: prompt}
	if len(source) > 0 {
		req.SourceImage = base64.StdEncoding.EncodeToString(source)
	}

	resp, err := c.post(ctx, c.ImageModel, req)
	if err != nil {
		return nil, err
	}
	if resp.Image == "" {
		return nil, ErrEmpty
	}
	img, err := base64.StdEncoding.DecodeString(resp.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: image payload: %v", ErrMalformed, err)
	}
	if len(img) == 0 {
		return nil, ErrEmpty
	}
	return img, nil
}
