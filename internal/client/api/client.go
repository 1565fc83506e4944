// Package api is the HTTP client for the report service. Every operation
// is a single authenticated round-trip: no retries, no per-call timeout
// overrides, no idempotency keys. Non-2xx responses surface as *APIError
// carrying the raw body so views can render the server's own message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"medreport/internal/client/models"
)

// uploadFieldName is the multipart field the service expects the file under.
const uploadFieldName = "original_file"

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New returns a client rooted at baseURL, e.g. "http://127.0.0.1:8000/api/".
func New(baseURL string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{baseURL: baseURL, httpc: &http.Client{}}
}

// do performs one round-trip and returns the raw response body. A non-empty
// token is sent as a bearer header; token validity is the server's problem.
func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: data}
	}
	return data, nil
}

func (c *Client) postJSON(ctx context.Context, path, token string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, token, "application/json", bytes.NewReader(body))
}

// Register creates a new account. The created-user body is not used.
func (c *Client) Register(ctx context.Context, username, password, email string) error {
	payload := map[string]string{"username": username, "password": password, "email": email}
	_, err := c.postJSON(ctx, "register/", "", payload)
	return err
}

// ExchangeToken trades credentials for an access/refresh token pair.
func (c *Client) ExchangeToken(ctx context.Context, username, password string) (models.TokenPair, error) {
	payload := map[string]string{"username": username, "password": password}
	data, err := c.postJSON(ctx, "token/", "", payload)
	if err != nil {
		return models.TokenPair{}, err
	}

	var pair models.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("decode token response: %w", err)
	}
	return pair, nil
}

// UploadReport streams one file as a multipart form and returns the raw
// created-report body; the caller resolves the new id out of it.
func (c *Client) UploadReport(ctx context.Context, token, filename string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodPost, "reports/", token, mw.FormDataContentType(), &buf)
}

func (c *Client) ListReports(ctx context.Context, token string) ([]models.Report, error) {
	data, err := c.do(ctx, http.MethodGet, "reports/", token, "", nil)
	if err != nil {
		return nil, err
	}

	var reports []models.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return reports, nil
}

func (c *Client) GetReport(ctx context.Context, token string, id int64) (models.Report, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("reports/%d/", id), token, "", nil)
	if err != nil {
		return models.Report{}, err
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return models.Report{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}

// CreateSummary asks the service to summarize a report and returns the raw
// body; the response shape varies, so interpretation is left to the caller.
func (c *Client) CreateSummary(ctx context.Context, token string, id int64) ([]byte, error) {
	return c.postJSON(ctx, fmt.Sprintf("reports/%d/summarize/", id), token, map[string]string{})
}

func (c *Client) ListSummaries(ctx context.Context, token string) ([]models.Summary, error) {
	data, err := c.do(ctx, http.MethodGet, "summaries/", token, "", nil)
	if err != nil {
		return nil, err
	}

	var summaries []models.Summary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("decode summaries: %w", err)
	}
	return summaries, nil
}

func (c *Client) DeleteReport(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("reports/%d/", id), token, "", nil)
	return err
}
