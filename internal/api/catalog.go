// file: internal/api/catalog.go
// version: 1.1.0
// guid: 7e8f9a0b-1c2d-3e4f-5a6b-7c8d9e0f1a2b

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jdfalk/library-console/internal/models"
)

// ListMembers fetches all registered members.
func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := c.Call(ctx, http.MethodGet, "/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.Call(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListPublishers fetches all publishers.
func (c *Client) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	var publishers []models.Publisher
	if err := c.Call(ctx, http.MethodGet, "/publishers", nil, &publishers); err != nil {
		return nil, err
	}
	return publishers, nil
}

// CreateItem POSTs a new record to the given collection endpoint
// (/members, /categories or /publishers).
func (c *Client) CreateItem(ctx context.Context, endpoint string, payload interface{}) error {
	return c.Call(ctx, http.MethodPost, endpoint, payload, nil)
}

// RenameItem PUTs a new name onto a record by id.
func (c *Client) RenameItem(ctx context.Context, endpoint string, id int, name string) error {
	body := map[string]string{"name": name}
	return c.Call(ctx, http.MethodPut, fmt.Sprintf("%s/%d", endpoint, id), body, nil)
}

// DeleteItem deletes one record by id from the given collection endpoint.
func (c *Client) DeleteItem(ctx context.Context, endpoint string, id int) error {
	return c.Call(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", endpoint, id), nil, nil)
}
