// file: internal/controller/circulation.go
// version: 1.2.0
// guid: 1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d

package controller

import (
	"context"
	"log"

	"github.com/jdfalk/library-console/internal/models"
)

// IssueBook transitions a book Available -> Issued. Member, issue date
// and expected return date are all mandatory; empty submissions fail
// client-side with no network call. On success the books page, the
// issue history and the dashboard summary are all re-fetched and
// re-rendered; on failure nothing is flipped optimistically.
func (c *Controller) IssueBook(ctx context.Context, key int, memberName, issueDate, returnDate string) error {
	book, ok := c.st.BookByKey(key)
	if !ok {
		return &ConsistencyError{Detail: "book not found in loaded page"}
	}
	if memberName == "" {
		return &ValidationError{Field: "memberName", Message: c.tr.T("issue.member_required", nil)}
	}
	if issueDate == "" {
		return &ValidationError{Field: "issueDate", Message: c.tr.T("issue.issue_date_required", nil)}
	}
	if returnDate == "" {
		return &ValidationError{Field: "returnDate", Message: c.tr.T("issue.return_date_required", nil)}
	}

	req := models.IssueRequest{
		MemberName: memberName,
		IssueDate:  issueDate,
		ReturnDate: returnDate,
	}
	if err := c.api.IssueBook(ctx, key, req); err != nil {
		c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
		return err
	}

	c.reloadAfterCirculation(ctx)
	c.dialogs.Info(c.tr.T("dialog.success", nil),
		c.tr.T("books.issued_success", map[string]string{"book": book.BookName, "member": memberName}))
	return nil
}

// ReturnBook transitions a book Issued -> Available, locating the loan
// through the book's own Pending issue record. An Issued book with no
// Pending record is reported as a ConsistencyError instead of silently
// doing nothing.
func (c *Controller) ReturnBook(ctx context.Context, key int, actualReturnDate string) error {
	book, ok := c.st.BookByKey(key)
	if !ok {
		return &ConsistencyError{Detail: "book not found in loaded page"}
	}
	if _, ok := c.st.PendingRecordForBook(book.BookName); !ok {
		err := &ConsistencyError{Detail: "no pending issue record for " + book.BookName}
		// The mirrored history is out of step with the book list; offer
		// a reload so the next attempt works against fresh data.
		c.dialogs.InfoWithConfirm(c.tr.T("dialog.error", nil), err.Error(),
			func(ctx context.Context) error {
				if err := c.refreshIssueHistory(ctx); err != nil {
					return err
				}
				return c.LoadPage(ctx, c.st.CurrentPage)
			})
		return err
	}
	return c.completeReturn(ctx, book.Key(), book.BookName, actualReturnDate)
}

// ReturnFromHistory returns a book starting from an issue-history row,
// where the record is already known and the book is resolved by id.
func (c *Controller) ReturnFromHistory(ctx context.Context, recordID int, actualReturnDate string) error {
	record, ok := c.st.RecordByID(recordID)
	if !ok {
		return &ConsistencyError{Detail: "issue record not found"}
	}
	if record.Status != models.IssueStatusPending {
		return &ValidationError{Field: "status", Message: "loan is already closed"}
	}
	return c.completeReturn(ctx, record.BookID, record.BookName, actualReturnDate)
}

func (c *Controller) completeReturn(ctx context.Context, bookID int, bookName, actualReturnDate string) error {
	if actualReturnDate == "" {
		return &ValidationError{Field: "actualReturnDate", Message: c.tr.T("issue.actual_return_required", nil)}
	}

	req := models.ReturnRequest{ActualReturnDate: actualReturnDate}
	if err := c.api.ReturnBook(ctx, bookID, req); err != nil {
		c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
		return err
	}

	c.reloadAfterCirculation(ctx)
	c.dialogs.Info(c.tr.T("dialog.success", nil),
		c.tr.T("books.returned_success", map[string]string{"book": bookName}))
	return nil
}

// reloadAfterCirculation re-fetches the three collections an issue or
// return touches, awaiting each before the next because every step
// depends on the prior call's committed state.
func (c *Controller) reloadAfterCirculation(ctx context.Context) {
	if err := c.LoadPage(ctx, 1); err != nil {
		log.Printf("[DEBUG] book refresh after circulation failed: %v", err)
	}
	if err := c.refreshIssueHistory(ctx); err != nil {
		log.Printf("[DEBUG] issue history refresh failed: %v", err)
	}
	c.refreshDashboard(ctx)
}
