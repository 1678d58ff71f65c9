// file: internal/controller/books.go
// version: 1.2.0
// guid: 0f1a2b3c-4d5e-6f7a-8b9c-0d1e2f3a4b5c

package controller

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jdfalk/library-console/internal/models"
)

// applyBookPage replaces the local book list and pagination metadata
// with the server's response, unconditionally. Selection never survives
// a page replacement: a checked row that is no longer visible must not
// keep feeding the bulk-delete set.
func (c *Controller) applyBookPage(resp *models.BookListResponse) {
	c.st.BookSelection.Clear()
	c.st.Books = resp.Books
	c.st.TotalBooks = resp.Total
	c.st.TotalPages = resp.Pages
	if c.st.TotalPages < 1 {
		c.st.TotalPages = 1
	}
	c.st.CurrentPage = resp.CurrentPage
	if c.st.CurrentPage < 1 {
		c.st.CurrentPage = 1
	}
}

// loadBooks is the single fetch path shared by plain pagination and
// filtered listings; the active filter map always rides along. A failed
// fetch resets to an empty page-1 state rather than keeping stale data.
func (c *Controller) loadBooks(ctx context.Context, gen uint64, page int) error {
	resp, err := c.api.ListBooks(ctx, page, PerPage, c.st.Filters)
	if c.st.stale(gen) {
		c.dropStale(PageBooks)
		return nil
	}
	if err != nil {
		c.st.resetBooks()
		c.view.RenderBooks(BuildBooks(c.st))
		return err
	}
	c.applyBookPage(resp)
	c.view.RenderBooks(BuildBooks(c.st))
	return nil
}

// LoadPage fetches page n of book results with the current filter map.
func (c *Controller) LoadPage(ctx context.Context, n int) error {
	return c.loadBooks(ctx, c.st.generation, n)
}

// ApplyFilters replaces the active filter set (blank values omitted,
// whitespace trimmed), resets to page 1 and re-fetches.
func (c *Controller) ApplyFilters(ctx context.Context, filters map[string]string) error {
	next := map[string]string{}
	for column, value := range filters {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			next[column] = trimmed
		}
	}
	c.st.Filters = next
	c.st.CurrentPage = 1
	return c.LoadPage(ctx, 1)
}

// ClearFilters reverts to the unfiltered fetch path from page 1.
func (c *Controller) ClearFilters(ctx context.Context) error {
	return c.ApplyFilters(ctx, nil)
}

// NextPage advances one page; a no-op on the last page.
func (c *Controller) NextPage(ctx context.Context) error {
	if c.st.CurrentPage >= c.st.TotalPages {
		return nil
	}
	return c.LoadPage(ctx, c.st.CurrentPage+1)
}

// PreviousPage goes back one page; a no-op on the first page.
func (c *Controller) PreviousPage(ctx context.Context) error {
	if c.st.CurrentPage <= 1 {
		return nil
	}
	return c.LoadPage(ctx, c.st.CurrentPage-1)
}

// AddBook creates a book, optimistically appends the created record and
// then re-fetches page 1 so the list reflects committed server state.
func (c *Controller) AddBook(ctx context.Context, req models.BookCreateRequest) error {
	if req.BookName == "" {
		return &ValidationError{Field: "bookName", Message: "book name is required"}
	}
	if req.Author == "" {
		return &ValidationError{Field: "author", Message: "author is required"}
	}
	if req.Category == "" {
		return &ValidationError{Field: "category", Message: "category is required"}
	}

	created, err := c.api.CreateBook(ctx, req)
	if err != nil {
		c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
		return err
	}

	// The one place the controller hand-patches a record in: the list
	// shows the new book even if the page-1 refetch below fails.
	c.st.Books = append(c.st.Books, *created)

	if err := c.LoadPage(ctx, 1); err != nil {
		log.Printf("[DEBUG] book list refresh after add failed: %v", err)
	}
	c.dialogs.Info(c.tr.T("dialog.success", nil), c.tr.T("books.added_success", nil))
	return nil
}

// EditBook updates a book's mutable fields and reloads the current page.
func (c *Controller) EditBook(ctx context.Context, key int, req models.BookCreateRequest) error {
	if _, ok := c.st.BookByKey(key); !ok {
		return &ConsistencyError{Detail: "book not found in loaded page"}
	}
	if err := c.api.UpdateBook(ctx, key, req); err != nil {
		c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
		return err
	}
	if err := c.LoadPage(ctx, c.st.CurrentPage); err != nil {
		return err
	}
	c.dialogs.Info(c.tr.T("dialog.success", nil),
		c.tr.T("books.updated_success", map[string]string{"book": req.BookName}))
	return nil
}

// DeleteBook stages a confirmed single-book delete.
func (c *Controller) DeleteBook(ctx context.Context, key int) error {
	book, ok := c.st.BookByKey(key)
	if !ok {
		return &ConsistencyError{Detail: "book not found in loaded page"}
	}

	message := c.tr.T("books.delete_confirm", map[string]string{"book": book.BookName})
	c.dialogs.RequestConfirm(message, func(ctx context.Context) error {
		if err := c.api.DeleteBook(ctx, key); err != nil {
			c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
			return err
		}
		if err := c.LoadPage(ctx, c.st.CurrentPage); err != nil {
			return err
		}
		c.dialogs.Info(c.tr.T("dialog.success", nil),
			c.tr.T("books.deleted_success", map[string]string{"book": book.BookName}))
		return nil
	})
	return nil
}

// DuplicateSuggestions fuzzily matches a partial book name or author
// against the loaded page so duplicates surface while typing. Values
// shorter than three characters yield nothing.
func (c *Controller) DuplicateSuggestions(field, value string) []string {
	if len(value) < 3 {
		return nil
	}

	candidates := make([]string, 0, len(c.st.Books))
	seen := map[string]struct{}{}
	for _, b := range c.st.Books {
		var candidate string
		switch field {
		case "bookName":
			candidate = b.BookName
		case "author":
			candidate = b.Author
		default:
			return nil
		}
		if _, dup := seen[candidate]; candidate != "" && !dup {
			seen[candidate] = struct{}{}
			candidates = append(candidates, candidate)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(value, candidates)
	sort.Sort(ranks)
	matches := make([]string, 0, len(ranks))
	for _, r := range ranks {
		matches = append(matches, r.Target)
	}
	return matches
}
