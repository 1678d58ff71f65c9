// file: internal/console/console_test.go
// version: 1.1.0
// guid: 8a9b0c1d-2e3f-4a5b-6c7d-8e9f0a1b2c3d

package console

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/library-console/internal/api"
	"github.com/jdfalk/library-console/internal/controller"
	"github.com/jdfalk/library-console/internal/i18n"
	"github.com/jdfalk/library-console/internal/models"
)

// runSession executes a scripted console session against a canned
// backend and returns the terminal output plus the requests seen.
func runSession(t *testing.T, script string) (string, []string) {
	t.Helper()

	var mu sync.Mutex
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.Method+" "+r.URL.Path)
		mu.Unlock()

		switch r.URL.Path {
		case "/api/books":
			_ = json.NewEncoder(w).Encode(models.BookListResponse{
				Books: []models.Book{
					{LibraryID: 1, BookName: "Dune", Author: "Herbert", Category: "Sci-Fi", Status: models.BookStatusAvailable},
				},
				Total: 1, Pages: 1, CurrentPage: 1,
			})
		case "/api/members":
			_ = json.NewEncoder(w).Encode([]models.Member{{ID: 4, Name: "Sam"}})
		case "/api/categories":
			_ = json.NewEncoder(w).Encode([]models.Category{})
		case "/api/publishers":
			_ = json.NewEncoder(w).Encode([]models.Publisher{})
		case "/api/issue-history":
			_ = json.NewEncoder(w).Encode(models.IssueHistoryResponse{})
		case "/api/library-log":
			_ = json.NewEncoder(w).Encode(models.LibraryLogResponse{})
		case "/api/dashboard":
			_ = json.NewEncoder(w).Encode(models.DashboardSummary{TotalBooks: 1})
		default:
			_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "ok"})
		}
	}))
	t.Cleanup(server.Close)

	tr := i18n.New("", nil)
	require.NoError(t, tr.Load("en"))

	var out bytes.Buffer
	view := NewTerminalView(&out, tr)
	ctrl := controller.New(api.NewClient(server.URL), view, tr)

	c := New(ctrl, tr, strings.NewReader(script), &out)
	require.NoError(t, c.Run(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	return out.String(), requests
}

func TestRun_HelpAndQuit(t *testing.T) {
	out, requests := runSession(t, "help\nquit\n")
	assert.Contains(t, out, "Navigation:")
	assert.Contains(t, out, "bulk-delete")
	assert.Empty(t, requests, "help must not hit the backend")
}

func TestRun_BooksPageRendersTable(t *testing.T) {
	out, requests := runSession(t, "books\nquit\n")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Herbert")
	assert.Contains(t, out, "Page 1 of 1 (1 total books)")
	assert.Contains(t, requests, "GET /api/books")
}

func TestRun_DeleteBookConfirmCancel(t *testing.T) {
	_, requests := runSession(t, "books\ndelete-book 1\nn\nquit\n")
	for _, req := range requests {
		assert.NotEqual(t, "DELETE /api/books/1", req, "cancelled delete must not fire")
	}
}

func TestRun_DeleteBookConfirmYes(t *testing.T) {
	out, requests := runSession(t, "books\ndelete-book 1\ny\nquit\n")
	assert.Contains(t, out, "Are you sure you want to delete \"Dune\"?")
	assert.Contains(t, requests, "DELETE /api/books/1")
}

func TestRun_MembersSelectionBulkDelete(t *testing.T) {
	_, requests := runSession(t, "members\nselect 4\nbulk-delete\ny\nquit\n")
	assert.Contains(t, requests, "DELETE /api/members/4")
}

func TestRun_UnknownCommand(t *testing.T) {
	out, _ := runSession(t, "frobnicate\nquit\n")
	assert.Contains(t, out, `unknown command "frobnicate"`)
}

func TestRun_EOFStopsLoop(t *testing.T) {
	out, _ := runSession(t, "help\n")
	assert.Contains(t, out, "Navigation:")
}

func TestCheckboxAndBadge(t *testing.T) {
	assert.Equal(t, "[x]", checkbox(true))
	assert.Equal(t, "[ ]", checkbox(false))
	assert.Contains(t, statusBadge("Available"), "Available")
	assert.Equal(t, "Lost", statusBadge("Lost"))
}
