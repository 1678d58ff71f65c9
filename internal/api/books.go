// file: internal/api/books.go
// version: 1.1.0
// guid: 6d7e8f9a-0b1c-2d3e-4f5a-6b7c8d9e0f1a

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jdfalk/library-console/internal/models"
)

// ListBooks fetches one page of book results. filters maps column name
// to a non-empty search value; pass nil for an unfiltered listing.
// Filtered and unfiltered listings share this one fetch path.
func (c *Client) ListBooks(ctx context.Context, page, perPage int, filters map[string]string) (*models.BookListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	for column, value := range filters {
		if value != "" {
			query.Set(column, value)
		}
	}

	var resp models.BookListResponse
	if err := c.Call(ctx, http.MethodGet, "/books?"+query.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateBook adds a new book and returns the created record.
func (c *Client) CreateBook(ctx context.Context, req models.BookCreateRequest) (*models.Book, error) {
	var book models.Book
	if err := c.Call(ctx, http.MethodPost, "/books", req, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook replaces the mutable fields of a book by id.
func (c *Client) UpdateBook(ctx context.Context, id int, req models.BookCreateRequest) error {
	return c.Call(ctx, http.MethodPut, fmt.Sprintf("/books/%d", id), req, nil)
}

// DeleteBook deletes a single book by id.
func (c *Client) DeleteBook(ctx context.Context, id int) error {
	return c.Call(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil)
}

// BulkDeleteBooks deletes books in one batched backend call.
func (c *Client) BulkDeleteBooks(ctx context.Context, ids []int) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.Call(ctx, http.MethodPost, "/books/bulk-delete", models.BulkDeleteRequest{BookIDs: ids}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// IssueBook checks a book out to a member.
func (c *Client) IssueBook(ctx context.Context, bookID int, req models.IssueRequest) error {
	return c.Call(ctx, http.MethodPost, fmt.Sprintf("/books/%d/issue", bookID), req, nil)
}

// ReturnBook checks an issued book back in.
func (c *Client) ReturnBook(ctx context.Context, bookID int, req models.ReturnRequest) error {
	return c.Call(ctx, http.MethodPost, fmt.Sprintf("/books/%d/return", bookID), req, nil)
}
