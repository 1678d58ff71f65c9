// file: internal/models/models.go
// version: 1.1.0
// guid: 9c0d1e2f-3a4b-5c6d-7e8f-9a0b1c2d3e4f

package models

// Book status values as reported by the backend.
const (
	BookStatusAvailable = "Available"
	BookStatusIssued    = "Issued"
)

// Issue record status values as reported by the backend.
const (
	IssueStatusPending  = "Pending"
	IssueStatusReturned = "Returned"
)

// Book represents a catalog entry fetched verbatim from the backend.
// The backend serves the primary key as library_id; older records may
// only carry id, so both are kept and Key() picks the right one.
type Book struct {
	ID               int    `json:"id,omitempty"`
	LibraryID        int    `json:"library_id,omitempty"`
	BookName         string `json:"bookName"`
	Author           string `json:"author"`
	Category         string `json:"category"`
	Editor           string `json:"editor,omitempty"`
	Volumes          *int   `json:"volumes,omitempty"`
	Publisher        string `json:"publisher,omitempty"`
	Year             *int   `json:"year,omitempty"`
	Copies           *int   `json:"copies,omitempty"`
	Status           string `json:"status"`
	CompletionStatus string `json:"completion_status,omitempty"`
	Note             string `json:"note,omitempty"`
}

// Key returns the identity the UI uses for a book: library_id when
// present, else id.
func (b Book) Key() int {
	if b.LibraryID != 0 {
		return b.LibraryID
	}
	return b.ID
}

// Member represents a registered library member.
type Member struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Category represents a book category.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Publisher represents a book publisher.
type Publisher struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// IssueRecord represents one loan of a book to a member. A record with
// status Pending identifies the current borrower of an issued book.
type IssueRecord struct {
	ID               int    `json:"id"`
	BookID           int    `json:"book_id"`
	BookName         string `json:"bookName"`
	MemberName       string `json:"memberName"`
	IssueDate        string `json:"issueDate"`
	ReturnDate       string `json:"returnDate,omitempty"`
	ActualReturnDate string `json:"actualReturnDate,omitempty"`
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
}

// LogEntry is one free-text activity log record, newest first.
type LogEntry struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
	LogType   string `json:"log_type,omitempty"`
}

// DashboardSummary holds the counts shown on the dashboard page.
type DashboardSummary struct {
	TotalBooks      int `json:"total_books"`
	TotalAuthors    int `json:"total_authors"`
	TotalCategories int `json:"total_categories"`
	BooksAvailable  int `json:"books_available"`
	BooksIssued     int `json:"books_issued"`
}

// BookListResponse represents one server-side page of book results.
type BookListResponse struct {
	Books       []Book `json:"books"`
	Total       int    `json:"total"`
	Pages       int    `json:"pages"`
	CurrentPage int    `json:"current_page"`
}

// IssueHistoryResponse wraps the issue history collection.
type IssueHistoryResponse struct {
	History []IssueRecord `json:"history"`
}

// LibraryLogResponse wraps the activity log collection.
type LibraryLogResponse struct {
	Logs []LogEntry `json:"logs"`
}

// BookCreateRequest is the payload for creating or updating a book.
// Pointer fields are omitted when unset so the backend keeps defaults.
type BookCreateRequest struct {
	BookName         string `json:"bookName"`
	Author           string `json:"author"`
	Category         string `json:"category"`
	Editor           string `json:"editor,omitempty"`
	Volumes          *int   `json:"volumes,omitempty"`
	PublisherID      *int   `json:"publisher_id,omitempty"`
	Year             *int   `json:"year,omitempty"`
	Copies           *int   `json:"copies,omitempty"`
	Status           string `json:"status,omitempty"`
	CompletionStatus string `json:"completion_status,omitempty"`
	Note             string `json:"note,omitempty"`
}

// IssueRequest is the payload for issuing a book to a member.
type IssueRequest struct {
	MemberName string `json:"memberName"`
	IssueDate  string `json:"issueDate"`
	ReturnDate string `json:"returnDate"`
}

// ReturnRequest is the payload for returning an issued book.
type ReturnRequest struct {
	ActualReturnDate string `json:"actualReturnDate"`
}

// BulkDeleteRequest carries the full id list for the batched book delete.
type BulkDeleteRequest struct {
	BookIDs []int `json:"book_ids"`
}

// MessageResponse is the generic {message} acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the credentials payload for /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the auth token returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ImportReport is the result of a CSV import upload.
type ImportReport struct {
	Message      string   `json:"message"`
	UpdatedCount int      `json:"updated_count"`
	Errors       []string `json:"errors"`
}

// CSVTemplateInfo describes the CSV import template served by the backend.
type CSVTemplateInfo struct {
	Message             string   `json:"message"`
	FileFormat          string   `json:"file_format"`
	Encoding            string   `json:"encoding"`
	RequiredColumns     []string `json:"required_columns"`
	OptionalColumns     []string `json:"optional_columns"`
	MultilingualSupport []string `json:"multilingual_support"`
	Instructions        []string `json:"instructions"`
}
