// file: internal/controller/view.go
// version: 1.1.0
// guid: 7c8d9e0f-1a2b-3c4d-5e6f-7a8b9c0d1e2f

package controller

// View receives ready-to-display view models. The terminal front end
// implements it; tests substitute a recording fake.
type View interface {
	ShowLoading(message string)
	HideLoading()
	RenderDashboard(vm DashboardView)
	RenderBooks(vm BooksView)
	RenderItems(kind EntityKind, vm ItemsView)
	RenderIssueHistory(rows []IssueRow)
	RenderLibraryLog(rows []LogRow)
	ShowInfo(d InfoDialog)
	ShowConfirm(d ConfirmDialog)
}

// DashboardView carries the summary tile values.
type DashboardView struct {
	TotalBooks      int
	TotalAuthors    int
	TotalCategories int
	BooksAvailable  int
	BooksIssued     int
}

// BookRow is one display-ready row of the book table. Empty backend
// fields render as "-".
type BookRow struct {
	Key        int
	Name       string
	Author     string
	Category   string
	Editor     string
	Volumes    string
	Publisher  string
	Year       string
	Copies     string
	Status     string
	Completion string
	Note       string
	Selected   bool
	CanIssue   bool
}

// PaginationView is purely a function of (current page, total pages,
// total items).
type PaginationView struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	PrevDisabled bool
	NextDisabled bool
}

// BooksView is the complete book page view model.
type BooksView struct {
	Rows          []BookRow
	Pagination    PaginationView
	Header        HeaderState
	SelectedCount int
	BulkEnabled   bool
}

// ItemRow is one row of a member/category/publisher list.
type ItemRow struct {
	ID       int
	Name     string
	Selected bool
}

// ItemsView is the view model for one of the three item lists.
type ItemsView struct {
	Rows          []ItemRow
	Header        HeaderState
	SelectedCount int
	BulkEnabled   bool
}

// IssueRow is one display-ready issue history row.
type IssueRow struct {
	Index      int
	ID         int
	BookName   string
	MemberName string
	IssueDate  string
	ReturnDate string
	Status     string
	Pending    bool
}

// LogRow is one display-ready activity log row, newest first.
type LogRow struct {
	ID        int
	Timestamp string
	Content   string
}
