// file: internal/api/csv.go
// version: 1.0.0
// guid: 9a0b1c2d-3e4f-5a6b-7c8d-9e0f1a2b3c4d

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	ulid "github.com/oklog/ulid/v2"

	"github.com/jdfalk/library-console/internal/models"
)

// ExportCSV streams the full book export to w and returns the byte count.
func (c *Client) ExportCSV(ctx context.Context, w io.Writer) (int64, error) {
	return c.download(ctx, "/books/export-csv", w)
}

// DownloadCSVTemplate streams the import template to w.
func (c *Client) DownloadCSVTemplate(ctx context.Context, w io.Writer) (int64, error) {
	return c.download(ctx, "/books/csv-template", w)
}

// CSVTemplateInfo fetches the template description (columns, encoding,
// multilingual notes).
func (c *Client) CSVTemplateInfo(ctx context.Context) (*models.CSVTemplateInfo, error) {
	var info models.CSVTemplateInfo
	if err := c.Call(ctx, http.MethodGet, "/books/csv-template-info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ImportCSV uploads a CSV file as multipart form data and returns the
// backend's import report. Parsing happens entirely server-side.
func (c *Client) ImportCSV(ctx context.Context, filename string, r io.Reader) (*models.ImportReport, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload form: %w", err)
	}

	url := c.baseURL + basePath + "/books/import-csv"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var report models.ImportReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode import report: %w", err)
	}
	return &report, nil
}
