// file: internal/controller/viewmodel.go
// version: 1.2.0
// guid: 8d9e0f1a-2b3c-4d5e-6f7a-8b9c0d1e2f3a

package controller

import (
	"strconv"
	"strings"

	"github.com/jdfalk/library-console/internal/models"
)

// The builders in this file are pure State -> view-model transforms so
// the display shape can be unit tested without a terminal attached.

// BuildDashboard maps the cached summary onto the dashboard tiles.
func BuildDashboard(s models.DashboardSummary) DashboardView {
	return DashboardView{
		TotalBooks:      s.TotalBooks,
		TotalAuthors:    s.TotalAuthors,
		TotalCategories: s.TotalCategories,
		BooksAvailable:  s.BooksAvailable,
		BooksIssued:     s.BooksIssued,
	}
}

// BuildBooks assembles the complete book page view model from the
// current page, filter-independent selection state included.
func BuildBooks(st *State) BooksView {
	rows := make([]BookRow, 0, len(st.Books))
	for _, b := range st.Books {
		rows = append(rows, BookRow{
			Key:        b.Key(),
			Name:       b.BookName,
			Author:     b.Author,
			Category:   b.Category,
			Editor:     dashIfEmpty(b.Editor),
			Volumes:    dashIfNil(b.Volumes),
			Publisher:  dashIfEmpty(b.Publisher),
			Year:       dashIfNil(b.Year),
			Copies:     dashIfNil(b.Copies),
			Status:     b.Status,
			Completion: dashIfEmpty(b.CompletionStatus),
			Note:       dashIfEmpty(b.Note),
			Selected:   st.BookSelection.Has(b.Key()),
			CanIssue:   b.Status == models.BookStatusAvailable,
		})
	}

	selected := st.BookSelection.Count()
	return BooksView{
		Rows:          rows,
		Pagination:    BuildPagination(st.CurrentPage, st.TotalPages, st.TotalBooks),
		Header:        HeaderFor(selected, len(rows)),
		SelectedCount: selected,
		BulkEnabled:   selected > 0,
	}
}

// BuildPagination derives the pager controls: previous disabled on the
// first page, next disabled on the last.
func BuildPagination(currentPage, totalPages, totalItems int) PaginationView {
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginationView{
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		PrevDisabled: currentPage == 1,
		NextDisabled: currentPage == totalPages,
	}
}

// TotalPagesFor computes ceil(totalItems / perPage), never below 1.
func TotalPagesFor(totalItems, perPage int) int {
	pages := (totalItems + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// BuildItems assembles one item list view model for the given kind.
func BuildItems(st *State, kind EntityKind) ItemsView {
	refs := st.Items(kind)
	sel := st.selectionFor(kind)

	rows := make([]ItemRow, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, ItemRow{ID: ref.ID, Name: ref.Name, Selected: sel.Has(ref.ID)})
	}

	selected := sel.Count()
	return ItemsView{
		Rows:          rows,
		Header:        HeaderFor(selected, len(rows)),
		SelectedCount: selected,
		BulkEnabled:   selected > 0,
	}
}

// BuildIssueRows maps issue records onto display rows, 1-based index.
func BuildIssueRows(history []models.IssueRecord) []IssueRow {
	rows := make([]IssueRow, 0, len(history))
	for i, r := range history {
		rows = append(rows, IssueRow{
			Index:      i + 1,
			ID:         r.ID,
			BookName:   r.BookName,
			MemberName: r.MemberName,
			IssueDate:  r.IssueDate,
			ReturnDate: dashIfEmpty(r.ReturnDate),
			Status:     r.Status,
			Pending:    r.Status == models.IssueStatusPending,
		})
	}
	return rows
}

// FilterIssueHistory narrows records by case-insensitive substring on
// book and member name and exact status match; blank filters pass all.
func FilterIssueHistory(history []models.IssueRecord, bookName, memberName, status string) []models.IssueRecord {
	filtered := make([]models.IssueRecord, 0, len(history))
	for _, r := range history {
		if bookName != "" && !strings.Contains(strings.ToLower(r.BookName), strings.ToLower(bookName)) {
			continue
		}
		if memberName != "" && !strings.Contains(strings.ToLower(r.MemberName), strings.ToLower(memberName)) {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// BuildLogRows maps log entries onto display rows.
func BuildLogRows(entries []models.LogEntry) []LogRow {
	rows := make([]LogRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, LogRow{ID: e.ID, Timestamp: e.Timestamp, Content: e.Content})
	}
	return rows
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dashIfNil(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}
