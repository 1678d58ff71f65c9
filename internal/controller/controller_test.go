// file: internal/controller/controller_test.go
// version: 1.2.0
// guid: 3b4c5d6e-7f8a-9b0c-1d2e-3f4a5b6c7d8e

package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/library-console/internal/api"
	"github.com/jdfalk/library-console/internal/i18n"
	"github.com/jdfalk/library-console/internal/models"
)

// fakeView records every render and dialog for assertions.
type fakeView struct {
	mu       sync.Mutex
	books    []BooksView
	items    map[EntityKind][]ItemsView
	history  [][]IssueRow
	logs     [][]LogRow
	infos    []InfoDialog
	confirms []ConfirmDialog
	loading  int
}

func newFakeView() *fakeView {
	return &fakeView{items: map[EntityKind][]ItemsView{}}
}

func (v *fakeView) ShowLoading(string)            { v.mu.Lock(); v.loading++; v.mu.Unlock() }
func (v *fakeView) HideLoading()                  {}
func (v *fakeView) RenderDashboard(DashboardView) {}
func (v *fakeView) RenderBooks(vm BooksView) {
	v.mu.Lock()
	v.books = append(v.books, vm)
	v.mu.Unlock()
}
func (v *fakeView) RenderItems(kind EntityKind, vm ItemsView) {
	v.mu.Lock()
	v.items[kind] = append(v.items[kind], vm)
	v.mu.Unlock()
}
func (v *fakeView) RenderIssueHistory(rows []IssueRow) {
	v.mu.Lock()
	v.history = append(v.history, rows)
	v.mu.Unlock()
}
func (v *fakeView) RenderLibraryLog(rows []LogRow) {
	v.mu.Lock()
	v.logs = append(v.logs, rows)
	v.mu.Unlock()
}
func (v *fakeView) ShowInfo(d InfoDialog) { v.mu.Lock(); v.infos = append(v.infos, d); v.mu.Unlock() }
func (v *fakeView) ShowConfirm(d ConfirmDialog) {
	v.mu.Lock()
	v.confirms = append(v.confirms, d)
	v.mu.Unlock()
}

func (v *fakeView) lastBooks(t *testing.T) BooksView {
	t.Helper()
	v.mu.Lock()
	defer v.mu.Unlock()
	require.NotEmpty(t, v.books, "no books render recorded")
	return v.books[len(v.books)-1]
}

func (v *fakeView) lastInfo(t *testing.T) InfoDialog {
	t.Helper()
	v.mu.Lock()
	defer v.mu.Unlock()
	require.NotEmpty(t, v.infos, "no info dialog recorded")
	return v.infos[len(v.infos)-1]
}

// testBackend is a scriptable in-memory library API.
type testBackend struct {
	mu       sync.Mutex
	books    []models.Book
	members  []models.Member
	history  []models.IssueRecord
	requests []string
	failAll  bool
}

func (b *testBackend) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, v interface{}) {
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Method+" "+r.URL.RequestURI())
		failing := b.failAll
		b.mu.Unlock()
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			writeJSON(w, map[string]string{"error": "backend down"})
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		switch {
		case r.URL.Path == "/api/health":
			writeJSON(w, map[string]string{"message": "healthy"})
		case r.URL.Path == "/api/dashboard":
			writeJSON(w, models.DashboardSummary{TotalBooks: len(b.books)})
		case r.URL.Path == "/api/books" && r.Method == http.MethodGet:
			writeJSON(w, models.BookListResponse{
				Books: b.books, Total: len(b.books), Pages: 1, CurrentPage: 1,
			})
		case r.URL.Path == "/api/members":
			writeJSON(w, b.members)
		case r.URL.Path == "/api/categories":
			writeJSON(w, []models.Category{})
		case r.URL.Path == "/api/publishers":
			writeJSON(w, []models.Publisher{})
		case r.URL.Path == "/api/issue-history":
			writeJSON(w, models.IssueHistoryResponse{History: b.history})
		case r.URL.Path == "/api/library-log":
			writeJSON(w, models.LibraryLogResponse{Logs: nil})
		default:
			// Mutations acknowledge generically; state transitions are
			// scripted per test by editing the backend fields.
			writeJSON(w, models.MessageResponse{Message: "ok"})
		}
	})
	return mux
}

func (b *testBackend) requestCount(prefix string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if len(r) >= len(prefix) && r[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func newTestController(t *testing.T, backend *testBackend) (*Controller, *fakeView) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	tr := i18n.New("", nil)
	require.NoError(t, tr.Load("en"))

	view := newFakeView()
	return New(api.NewClient(server.URL), view, tr), view
}

func availableBook(key int, name, author string) models.Book {
	return models.Book{LibraryID: key, BookName: name, Author: author, Category: "Fiction", Status: models.BookStatusAvailable}
}

func TestStartup_LoadsAllCollections(t *testing.T) {
	backend := &testBackend{
		books:   []models.Book{availableBook(1, "Dune", "Herbert")},
		members: []models.Member{{ID: 1, Name: "Sam"}},
	}
	ctrl, _ := newTestController(t, backend)

	require.NoError(t, ctrl.Startup(context.Background()))
	assert.Len(t, ctrl.State().Books, 1)
	assert.Len(t, ctrl.State().Members, 1)
	assert.Equal(t, 1, ctrl.State().Dashboard.TotalBooks)
}

func TestStartup_UnauthorizedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Token is invalid"}`))
	}))
	defer server.Close()

	tr := i18n.New("", nil)
	require.NoError(t, tr.Load("en"))
	ctrl := New(api.NewClient(server.URL), newFakeView(), tr)

	err := ctrl.Startup(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestApplyFilters_TrimsAndResetsPage(t *testing.T) {
	backend := &testBackend{}
	ctrl, _ := newTestController(t, backend)
	ctrl.State().CurrentPage = 4

	require.NoError(t, ctrl.ApplyFilters(context.Background(), map[string]string{
		"author": "  Tolkien ",
		"year":   "   ",
	}))

	assert.Equal(t, map[string]string{"author": "Tolkien"}, ctrl.State().Filters)
	assert.Equal(t, 1, ctrl.State().CurrentPage)
}

func TestPagination_FiltersRideAlong(t *testing.T) {
	backend := &testBackend{}
	ctrl, _ := newTestController(t, backend)

	require.NoError(t, ctrl.ApplyFilters(context.Background(), map[string]string{"author": "Herbert"}))
	ctrl.State().TotalPages = 3
	require.NoError(t, ctrl.NextPage(context.Background()))

	backend.mu.Lock()
	defer backend.mu.Unlock()
	last := backend.requests[len(backend.requests)-1]
	assert.Contains(t, last, "author=Herbert")
	assert.Contains(t, last, "page=2")
}

func TestClearFilters_RevertsToUnfiltered(t *testing.T) {
	backend := &testBackend{}
	ctrl, _ := newTestController(t, backend)

	require.NoError(t, ctrl.ApplyFilters(context.Background(), map[string]string{"author": "Herbert"}))
	require.NoError(t, ctrl.ClearFilters(context.Background()))

	assert.Empty(t, ctrl.State().Filters)
	backend.mu.Lock()
	defer backend.mu.Unlock()
	last := backend.requests[len(backend.requests)-1]
	assert.NotContains(t, last, "author=")
	assert.Contains(t, last, "page=1")
}

func TestPagination_Boundaries(t *testing.T) {
	backend := &testBackend{}
	ctrl, _ := newTestController(t, backend)
	ctrl.State().CurrentPage = 1
	ctrl.State().TotalPages = 1

	require.NoError(t, ctrl.PreviousPage(context.Background()))
	require.NoError(t, ctrl.NextPage(context.Background()))
	assert.Zero(t, backend.requestCount("GET /api/books"), "boundary navigation must not fetch")
}

func TestLoadBooks_FailureResetsState(t *testing.T) {
	backend := &testBackend{books: []models.Book{availableBook(1, "Dune", "Herbert")}}
	ctrl, view := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))
	require.Len(t, ctrl.State().Books, 1)

	backend.mu.Lock()
	backend.failAll = true
	backend.mu.Unlock()

	require.Error(t, ctrl.LoadPage(context.Background(), 1))
	assert.Empty(t, ctrl.State().Books)
	assert.Equal(t, 1, ctrl.State().CurrentPage)
	assert.Empty(t, view.lastBooks(t).Rows)
}

func TestIssueBook_RequiredFields(t *testing.T) {
	backend := &testBackend{books: []models.Book{availableBook(1, "Dune", "Herbert")}}
	ctrl, _ := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))
	before := backend.requestCount("POST")

	tests := []struct {
		name   string
		member string
		issue  string
		ret    string
		field  string
	}{
		{"missing member", "", "2026-08-01", "2026-08-15", "memberName"},
		{"missing issue date", "Sam", "", "2026-08-15", "issueDate"},
		{"missing return date", "Sam", "2026-08-01", "", "returnDate"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ctrl.IssueBook(context.Background(), 1, tc.member, tc.issue, tc.ret)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
	assert.Equal(t, before, backend.requestCount("POST"), "validation failures must not reach the network")
}

func TestIssueBook_SuccessReloads(t *testing.T) {
	backend := &testBackend{books: []models.Book{availableBook(1, "Dune", "Herbert")}}
	ctrl, view := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))

	err := ctrl.IssueBook(context.Background(), 1, "Sam", "2026-08-01", "2026-08-15")
	require.NoError(t, err)

	assert.Equal(t, 1, backend.requestCount("POST /api/books/1/issue"))
	assert.GreaterOrEqual(t, backend.requestCount("GET /api/books"), 2, "book list must be re-fetched")
	assert.Equal(t, 1, backend.requestCount("GET /api/issue-history"))
	assert.Equal(t, 1, backend.requestCount("GET /api/dashboard"))
	assert.Contains(t, view.lastInfo(t).Body, "Dune")
}

func TestReturnBook_NoPendingRecord(t *testing.T) {
	backend := &testBackend{
		books: []models.Book{{LibraryID: 1, BookName: "Dune", Author: "Herbert", Category: "Fiction", Status: models.BookStatusIssued}},
	}
	ctrl, _ := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))

	err := ctrl.ReturnBook(context.Background(), 1, "2026-08-10")
	var cerr *ConsistencyError
	require.ErrorAs(t, err, &cerr)
	assert.Zero(t, backend.requestCount("POST /api/books/1/return"))
}

func TestReturnBook_DesyncOffersReload(t *testing.T) {
	backend := &testBackend{
		books: []models.Book{{LibraryID: 1, BookName: "Dune", Author: "Herbert", Category: "Fiction", Status: models.BookStatusIssued}},
	}
	ctrl, view := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))

	err := ctrl.ReturnBook(context.Background(), 1, "2026-08-10")
	var cerr *ConsistencyError
	require.ErrorAs(t, err, &cerr)

	// The error dialog carries a reload action; confirming it re-fetches
	// the issue history and the book page.
	require.NotNil(t, view.lastInfo(t).Confirm)
	require.True(t, ctrl.Dialogs().HasPending())
	booksBefore := backend.requestCount("GET /api/books")
	require.NoError(t, ctrl.Dialogs().ConfirmPending(context.Background()))
	assert.Equal(t, 1, backend.requestCount("GET /api/issue-history"))
	assert.Equal(t, booksBefore+1, backend.requestCount("GET /api/books"))
}

func TestInfoWithConfirm_StagesAndCancels(t *testing.T) {
	view := newFakeView()
	dialogs := NewDialogs(view)

	ran := false
	dialogs.InfoWithConfirm("title", "body", func(context.Context) error {
		ran = true
		return nil
	})
	require.True(t, dialogs.HasPending())
	require.NotNil(t, view.lastInfo(t).Confirm)

	dialogs.CancelPending()
	assert.False(t, dialogs.HasPending())
	assert.False(t, ran, "cancelled info confirm must not run")

	dialogs.InfoWithConfirm("title", "body", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, dialogs.ConfirmPending(context.Background()))
	assert.True(t, ran)
}

func TestReturnFromHistory_ClosedLoan(t *testing.T) {
	backend := &testBackend{
		history: []models.IssueRecord{{ID: 5, BookID: 1, BookName: "Dune", Status: models.IssueStatusReturned}},
	}
	ctrl, _ := newTestController(t, backend)
	require.NoError(t, ctrl.refreshIssueHistory(context.Background()))

	err := ctrl.ReturnFromHistory(context.Background(), 5, "2026-08-10")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestReturnFromHistory_Success(t *testing.T) {
	backend := &testBackend{
		history: []models.IssueRecord{{ID: 5, BookID: 1, BookName: "Dune", Status: models.IssueStatusPending}},
	}
	ctrl, _ := newTestController(t, backend)
	require.NoError(t, ctrl.refreshIssueHistory(context.Background()))

	require.NoError(t, ctrl.ReturnFromHistory(context.Background(), 5, "2026-08-10"))
	assert.Equal(t, 1, backend.requestCount("POST /api/books/1/return"))
}

func TestAddBook_RequiredFieldsAndSuccess(t *testing.T) {
	backend := &testBackend{}
	ctrl, view := newTestController(t, backend)

	err := ctrl.AddBook(context.Background(), models.BookCreateRequest{Author: "A. Author"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bookName", verr.Field)
	assert.Zero(t, backend.requestCount("POST /api/books"))

	req := models.BookCreateRequest{BookName: "Intro to X", Author: "A. Author", Category: "Science"}
	require.NoError(t, ctrl.AddBook(context.Background(), req))
	assert.Equal(t, 1, backend.requestCount("POST /api/books"))
	assert.GreaterOrEqual(t, backend.requestCount("GET /api/books"), 1, "list re-fetched after create")
	assert.Contains(t, view.lastInfo(t).Body, "added successfully")
}

func TestDeleteItem_DoesNotRefetchBooks(t *testing.T) {
	backend := &testBackend{}
	ctrl, view := newTestController(t, backend)
	ctrl.State().Categories = []models.Category{{ID: 3, Name: "Unused"}}

	require.NoError(t, ctrl.DeleteItem(context.Background(), KindCategory, "Unused"))
	require.True(t, ctrl.Dialogs().HasPending())
	require.NoError(t, ctrl.Dialogs().ConfirmPending(context.Background()))

	assert.Equal(t, 1, backend.requestCount("DELETE /api/categories/3"))
	assert.Equal(t, 1, backend.requestCount("GET /api/categories"))
	assert.Zero(t, backend.requestCount("GET /api/books"), "book list must not cascade-refresh")
	assert.Contains(t, view.lastInfo(t).Body, "deleted successfully")
}

func TestDeleteBook_ConfirmAndCancel(t *testing.T) {
	backend := &testBackend{books: []models.Book{availableBook(1, "Dune", "Herbert")}}
	ctrl, view := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))

	require.NoError(t, ctrl.DeleteBook(context.Background(), 1))
	require.True(t, ctrl.Dialogs().HasPending())
	assert.Contains(t, view.confirms[len(view.confirms)-1].Message, "Dune")

	ctrl.Dialogs().CancelPending()
	assert.Zero(t, backend.requestCount("DELETE"))

	require.NoError(t, ctrl.DeleteBook(context.Background(), 1))
	require.NoError(t, ctrl.Dialogs().ConfirmPending(context.Background()))
	assert.Equal(t, 1, backend.requestCount("DELETE /api/books/1"))
}

func TestDialogs_SecondConfirmOverwritesFirst(t *testing.T) {
	view := newFakeView()
	dialogs := NewDialogs(view)

	var ran []string
	dialogs.RequestConfirm("first", func(context.Context) error {
		ran = append(ran, "first")
		return nil
	})
	dialogs.RequestConfirm("second", func(context.Context) error {
		ran = append(ran, "second")
		return nil
	})

	require.NoError(t, dialogs.ConfirmPending(context.Background()))
	assert.Equal(t, []string{"second"}, ran)
	assert.False(t, dialogs.HasPending())
}

func TestAddItem_EmptyNameRejected(t *testing.T) {
	backend := &testBackend{}
	ctrl, _ := newTestController(t, backend)

	err := ctrl.AddItem(context.Background(), KindCategory, "   ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, backend.requestCount("POST /api/categories"))
}

func TestAddItem_MemberDefaultsEmail(t *testing.T) {
	var gotPayload map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/members" && r.Method == http.MethodPost {
			_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		}
		_ = json.NewEncoder(w).Encode([]models.Member{})
	}))
	defer server.Close()

	tr := i18n.New("", nil)
	require.NoError(t, tr.Load("en"))
	ctrl := New(api.NewClient(server.URL), newFakeView(), tr)

	require.NoError(t, ctrl.AddItem(context.Background(), KindMember, "Frodo Baggins"))
	assert.Equal(t, "Frodo Baggins", gotPayload["name"])
	assert.Regexp(t, `^frodobaggins_\d+@example\.com$`, gotPayload["email"])
}

func TestRenameItem_CollisionRejected(t *testing.T) {
	backend := &testBackend{}
	ctrl, _ := newTestController(t, backend)
	ctrl.State().Categories = []models.Category{
		{ID: 1, Name: "Fiction"},
		{ID: 2, Name: "Fantasy"},
	}

	err := ctrl.RenameItem(context.Background(), KindCategory, "Fiction", "Fantasy")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, backend.requestCount("PUT"))
}

func TestRenameItem_NoopOnSameName(t *testing.T) {
	backend := &testBackend{}
	ctrl, _ := newTestController(t, backend)
	ctrl.State().Categories = []models.Category{{ID: 1, Name: "Fiction"}}

	require.NoError(t, ctrl.RenameItem(context.Background(), KindCategory, "Fiction", "Fiction"))
	assert.Zero(t, backend.requestCount("PUT"))
}

func TestBulkDeleteBooks_NoneSelected(t *testing.T) {
	backend := &testBackend{}
	ctrl, view := newTestController(t, backend)

	ctrl.BulkDeleteBooks(context.Background())
	assert.False(t, ctrl.Dialogs().HasPending())
	assert.Contains(t, view.lastInfo(t).Body, "No books selected")
}

func TestBulkDeleteBooks_BatchedCall(t *testing.T) {
	backend := &testBackend{books: []models.Book{
		availableBook(1, "Dune", "Herbert"),
		availableBook(2, "Emma", "Austen"),
	}}
	ctrl, _ := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))
	ctrl.SelectAllBooks(true)

	ctrl.BulkDeleteBooks(context.Background())
	require.True(t, ctrl.Dialogs().HasPending())
	require.NoError(t, ctrl.Dialogs().ConfirmPending(context.Background()))

	assert.Equal(t, 1, backend.requestCount("POST /api/books/bulk-delete"))
	assert.Zero(t, ctrl.State().BookSelection.Count())
}

func TestBulkDeleteItems_SerializedPerID(t *testing.T) {
	backend := &testBackend{members: []models.Member{
		{ID: 1, Name: "Sam"}, {ID: 2, Name: "Frodo"}, {ID: 3, Name: "Merry"},
	}}
	ctrl, _ := newTestController(t, backend)
	require.NoError(t, ctrl.refreshItems(context.Background(), KindMember))
	ctrl.SelectAllItems(KindMember, true)

	ctrl.BulkDeleteItems(context.Background(), KindMember)
	require.True(t, ctrl.Dialogs().HasPending())
	require.NoError(t, ctrl.Dialogs().ConfirmPending(context.Background()))

	for id := 1; id <= 3; id++ {
		assert.Equal(t, 1, backend.requestCount(fmt.Sprintf("DELETE /api/members/%d", id)))
	}
	assert.Zero(t, ctrl.State().MemberSelection.Count())
}

func TestBookSelection_ClearedOnPageChange(t *testing.T) {
	pages := map[string][]models.Book{
		"1": {availableBook(1, "Dune", "Herbert")},
		"2": {availableBook(2, "Emma", "Austen")},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.BookListResponse{
			Books: pages[r.URL.Query().Get("page")],
			Total: 2, Pages: 2, CurrentPage: pageNumber(r.URL.Query().Get("page")),
		})
	}))
	defer server.Close()

	tr := i18n.New("", nil)
	require.NoError(t, tr.Load("en"))
	view := newFakeView()
	ctrl := New(api.NewClient(server.URL), view, tr)

	require.NoError(t, ctrl.LoadPage(context.Background(), 1))
	ctrl.ToggleBookSelect(1, true)
	require.Equal(t, 1, ctrl.State().BookSelection.Count())

	require.NoError(t, ctrl.NextPage(context.Background()))

	assert.Zero(t, ctrl.State().BookSelection.Count(), "selection must not survive a page change")
	vm := view.lastBooks(t)
	assert.Equal(t, HeaderUnchecked, vm.Header)
	assert.Zero(t, vm.SelectedCount)
	assert.False(t, vm.BulkEnabled)
	for _, row := range vm.Rows {
		assert.False(t, row.Selected)
	}
}

func pageNumber(s string) int {
	if s == "2" {
		return 2
	}
	return 1
}

func TestSelectAllBooks_UsesBookKeys(t *testing.T) {
	backend := &testBackend{books: []models.Book{
		availableBook(7, "Dune", "Herbert"),
		{ID: 3, BookName: "Emma", Author: "Austen", Category: "Fiction", Status: models.BookStatusAvailable},
	}}
	ctrl, view := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))

	ctrl.SelectAllBooks(true)
	assert.Equal(t, []int{3, 7}, ctrl.State().BookSelection.IDs())
	assert.Equal(t, HeaderChecked, view.lastBooks(t).Header)

	ctrl.SelectAllBooks(false)
	assert.Zero(t, ctrl.State().BookSelection.Count())
	assert.Equal(t, HeaderUnchecked, view.lastBooks(t).Header)
}

func TestGenerationGuard(t *testing.T) {
	st := NewState()
	gen := st.nextGeneration()
	assert.False(t, st.stale(gen))
	st.nextGeneration()
	assert.True(t, st.stale(gen), "earlier generation must be stale after navigation")
}

func TestLoadBooks_DropsStaleResponse(t *testing.T) {
	backend := &testBackend{books: []models.Book{availableBook(1, "Dune", "Herbert")}}
	ctrl, view := newTestController(t, backend)
	require.NoError(t, ctrl.LoadPage(context.Background(), 1))

	// A fetch started before navigation finishes after it: the user has
	// moved on, so its response must not replace the current page.
	gen := ctrl.st.generation
	ctrl.st.nextGeneration()
	backend.mu.Lock()
	backend.books = []models.Book{availableBook(2, "Emma", "Austen")}
	backend.mu.Unlock()

	view.mu.Lock()
	rendersBefore := len(view.books)
	view.mu.Unlock()
	requestsBefore := backend.requestCount("GET /api/books")

	require.NoError(t, ctrl.loadBooks(context.Background(), gen, 1))

	assert.Equal(t, requestsBefore+1, backend.requestCount("GET /api/books"), "the fetch itself still runs")
	require.Len(t, ctrl.State().Books, 1)
	assert.Equal(t, "Dune", ctrl.State().Books[0].BookName, "stale response must not replace loaded books")
	view.mu.Lock()
	rendersAfter := len(view.books)
	view.mu.Unlock()
	assert.Equal(t, rendersBefore, rendersAfter, "stale response must not re-render")
}

func TestHeaderFor(t *testing.T) {
	assert.Equal(t, HeaderUnchecked, HeaderFor(0, 10))
	assert.Equal(t, HeaderIndeterminate, HeaderFor(3, 10))
	assert.Equal(t, HeaderChecked, HeaderFor(10, 10))
	assert.Equal(t, HeaderUnchecked, HeaderFor(0, 0))
}

func TestDuplicateSuggestions(t *testing.T) {
	backend := &testBackend{}
	ctrl, _ := newTestController(t, backend)
	ctrl.State().Books = []models.Book{
		availableBook(1, "The Hobbit", "Tolkien"),
		availableBook(2, "The Hobbit", "Tolkien"),
		availableBook(3, "Dune", "Herbert"),
	}

	assert.Empty(t, ctrl.DuplicateSuggestions("bookName", "Th"), "short values yield nothing")
	matches := ctrl.DuplicateSuggestions("bookName", "hobbit")
	require.Len(t, matches, 1, "duplicates are deduplicated")
	assert.Equal(t, "The Hobbit", matches[0])
	assert.Empty(t, ctrl.DuplicateSuggestions("status", "avail"), "unknown fields yield nothing")
}
