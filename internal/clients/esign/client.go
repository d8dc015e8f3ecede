// Package esign is a thin client for the hosted e-signature product. It
// covers the three calls the application needs: listing templates, sending a
// submission for signature, and constructing signing/builder URLs.
package esign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 15 * time.Second

// Template is a reusable document template defined at the provider.
type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Submitter is one party asked to sign a submission.
type Submitter struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Slug  string `json:"slug,omitempty"` // Set by the provider; keys the signing URL
}

// Submission is a template sent out for signature.
type Submission struct {
	ID         string      `json:"id"`
	TemplateID string      `json:"template_id"`
	Status     string      `json:"status"`
	Submitters []Submitter `json:"submitters"`
}

// SubmissionRequest asks the provider to send a template to submitters.
type SubmissionRequest struct {
	TemplateID string      `json:"template_id"`
	SendEmail  bool        `json:"send_email"`
	Submitters []Submitter `json:"submitters"`
}

// ProviderError is a non-2xx response from the provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("e-signature provider returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the provider's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client for the given provider base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// ListTemplates retrieves the templates available to the account.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	var payload struct {
		Data []Template `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/templates", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// CreateSubmission sends a template out for signature.
func (c *Client) CreateSubmission(ctx context.Context, req SubmissionRequest) (*Submission, error) {
	var submission Submission
	if err := c.do(ctx, http.MethodPost, "/submissions", req, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// SigningURL constructs the URL a submitter visits to sign.
func (c *Client) SigningURL(submitterSlug string) string {
	return fmt.Sprintf("%s/s/%s", c.baseURL, url.PathEscape(submitterSlug))
}

// BuilderURL constructs the URL for editing a template in the provider's
// builder.
func (c *Client) BuilderURL(templateSlug string) string {
	return fmt.Sprintf("%s/templates/%s/edit", c.baseURL, url.PathEscape(templateSlug))
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to e-signature provider failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &ProviderError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}
