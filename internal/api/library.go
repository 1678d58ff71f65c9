// file: internal/api/library.go
// version: 1.1.0
// guid: 8f9a0b1c-2d3e-4f5a-6b7c-8d9e0f1a2b3c

package api

import (
	"context"
	"net/http"

	"github.com/jdfalk/library-console/internal/models"
)

// Health probes the backend, also validating the held token.
func (c *Client) Health(ctx context.Context) error {
	return c.Call(ctx, http.MethodGet, "/health", nil, nil)
}

// Login exchanges credentials for an auth token. The token is attached
// to the client on success.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.Call(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

// Dashboard fetches the summary counts for the dashboard page.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := c.Call(ctx, http.MethodGet, "/dashboard", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// IssueHistory fetches all issue records, pending and returned.
func (c *Client) IssueHistory(ctx context.Context) ([]models.IssueRecord, error) {
	var resp models.IssueHistoryResponse
	if err := c.Call(ctx, http.MethodGet, "/issue-history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// LibraryLog fetches the activity log, newest first.
func (c *Client) LibraryLog(ctx context.Context) ([]models.LogEntry, error) {
	var resp models.LibraryLogResponse
	if err := c.Call(ctx, http.MethodGet, "/library-log", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

// AddLogEntry appends a free-text entry to the activity log.
func (c *Client) AddLogEntry(ctx context.Context, content string) error {
	body := map[string]string{
		"content":  content,
		"log_type": "General",
	}
	return c.Call(ctx, http.MethodPost, "/library-log", body, nil)
}
