// file: internal/controller/state.go
// version: 1.2.0
// guid: 5a6b7c8d-9e0f-1a2b-3c4d-5e6f7a8b9c0d

package controller

import (
	"sort"

	"github.com/jdfalk/library-console/internal/models"
)

// PerPage is the fixed page size for book listings.
const PerPage = 100

// Page is one of the fixed named views. Exactly one page is active at
// a time.
type Page string

const (
	PageDashboard    Page = "dashboard"
	PageBooks        Page = "books"
	PageMembers      Page = "members"
	PageCategories   Page = "categories"
	PagePublishers   Page = "publishers"
	PageIssueHistory Page = "issue-history"
	PageLibraryLog   Page = "library-log"
)

// Pages lists every navigable page in menu order.
var Pages = []Page{
	PageDashboard, PageBooks, PageMembers, PageCategories,
	PagePublishers, PageIssueHistory, PageLibraryLog,
}

// State owns every in-memory collection the controller mirrors from the
// backend, plus the pagination cursor, the active filter set and the
// bulk-selection bookkeeping. It is only ever mutated from the single
// workflow that holds it between fetches; renders read it afterwards.
type State struct {
	Books        []models.Book
	TotalBooks   int
	TotalPages   int
	CurrentPage  int
	Filters      map[string]string
	Members      []models.Member
	Categories   []models.Category
	Publishers   []models.Publisher
	IssueHistory []models.IssueRecord
	LibraryLog   []models.LogEntry
	Dashboard    models.DashboardSummary

	ActivePage Page

	BookSelection      *Selection
	MemberSelection    *Selection
	CategorySelection  *Selection
	PublisherSelection *Selection

	// generation guards against a stale page fetch overwriting the
	// dataset of a page navigated to afterwards.
	generation uint64
}

// NewState returns an empty page-1 state.
func NewState() *State {
	return &State{
		CurrentPage:        1,
		TotalPages:         1,
		Filters:            map[string]string{},
		ActivePage:         PageDashboard,
		BookSelection:      NewSelection(),
		MemberSelection:    NewSelection(),
		CategorySelection:  NewSelection(),
		PublisherSelection: NewSelection(),
	}
}

// nextGeneration marks a new navigation epoch and returns it.
func (s *State) nextGeneration() uint64 {
	s.generation++
	return s.generation
}

// stale reports whether a fetch started at generation g has been
// superseded by a later navigation.
func (s *State) stale(g uint64) bool {
	return g != s.generation
}

// resetBooks drops the book page back to the empty page-1 state, used
// when a fetch fails rather than keeping stale data around.
func (s *State) resetBooks() {
	s.Books = nil
	s.TotalBooks = 0
	s.TotalPages = 1
	s.CurrentPage = 1
	s.BookSelection.Clear()
}

// BookByKey finds a loaded book by its UI identity.
func (s *State) BookByKey(key int) (models.Book, bool) {
	for _, b := range s.Books {
		if b.Key() == key {
			return b, true
		}
	}
	return models.Book{}, false
}

// PendingRecordForBook finds the Pending issue record matching a book
// name, identifying the current borrower.
func (s *State) PendingRecordForBook(bookName string) (models.IssueRecord, bool) {
	for _, r := range s.IssueHistory {
		if r.BookName == bookName && r.Status == models.IssueStatusPending {
			return r, true
		}
	}
	return models.IssueRecord{}, false
}

// RecordByID finds an issue record by id.
func (s *State) RecordByID(id int) (models.IssueRecord, bool) {
	for _, r := range s.IssueHistory {
		if r.ID == id {
			return r, true
		}
	}
	return models.IssueRecord{}, false
}

// Selection tracks the checked rows of one collection view.
type Selection struct {
	ids map[int]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: map[int]struct{}{}}
}

// Set checks or unchecks a single row.
func (sel *Selection) Set(id int, on bool) {
	if on {
		sel.ids[id] = struct{}{}
	} else {
		delete(sel.ids, id)
	}
}

// Has reports whether a row is checked.
func (sel *Selection) Has(id int) bool {
	_, ok := sel.ids[id]
	return ok
}

// Clear unchecks every row.
func (sel *Selection) Clear() {
	sel.ids = map[int]struct{}{}
}

// Count returns the number of checked rows.
func (sel *Selection) Count() int {
	return len(sel.ids)
}

// IDs returns the checked ids in ascending order.
func (sel *Selection) IDs() []int {
	ids := make([]int, 0, len(sel.ids))
	for id := range sel.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// HeaderState is the tri-state of a collection's select-all control.
type HeaderState int

const (
	HeaderUnchecked HeaderState = iota
	HeaderIndeterminate
	HeaderChecked
)

// HeaderFor derives the select-all state from the selected count and
// the number of rows in the current view.
func HeaderFor(selected, total int) HeaderState {
	switch {
	case selected == 0:
		return HeaderUnchecked
	case selected < total:
		return HeaderIndeterminate
	default:
		return HeaderChecked
	}
}
