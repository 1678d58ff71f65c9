// file: internal/console/view.go
// version: 1.2.0
// guid: 4d5e6f7a-8b9c-0d1e-2f3a-4b5c6d7e8f9a

// Package console is the interactive terminal front end: it renders the
// controller's view models as tables and runs the command loop.
package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/jdfalk/library-console/internal/controller"
	"github.com/jdfalk/library-console/internal/i18n"
)

var (
	availableBadge = color.New(color.FgGreen)
	issuedBadge    = color.New(color.FgYellow)
	errorTitle     = color.New(color.FgRed, color.Bold)
	successTitle   = color.New(color.FgGreen, color.Bold)
	plainTitle     = color.New(color.Bold)
)

// TerminalView renders view models to a writer. Colors degrade to plain
// text automatically when the writer is not a terminal.
type TerminalView struct {
	out io.Writer
	tr  *i18n.Translator
}

// NewTerminalView creates a view writing to out.
func NewTerminalView(out io.Writer, tr *i18n.Translator) *TerminalView {
	return &TerminalView{out: out, tr: tr}
}

func (v *TerminalView) ShowLoading(message string) {
	fmt.Fprintln(v.out, message)
}

func (v *TerminalView) HideLoading() {}

func (v *TerminalView) RenderDashboard(vm controller.DashboardView) {
	fmt.Fprintln(v.out)
	plainTitle.Fprintln(v.out, v.tr.T("nav.dashboard", nil))

	w := tabwriter.NewWriter(v.out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", v.tr.T("dashboard.total_books", nil), vm.TotalBooks)
	fmt.Fprintf(w, "%s\t%d\n", v.tr.T("dashboard.total_authors", nil), vm.TotalAuthors)
	fmt.Fprintf(w, "%s\t%d\n", v.tr.T("dashboard.total_categories", nil), vm.TotalCategories)
	fmt.Fprintf(w, "%s\t%d\n", v.tr.T("dashboard.books_available", nil), vm.BooksAvailable)
	fmt.Fprintf(w, "%s\t%d\n", v.tr.T("dashboard.books_issued", nil), vm.BooksIssued)
	w.Flush()
}

func (v *TerminalView) RenderBooks(vm controller.BooksView) {
	fmt.Fprintln(v.out)
	plainTitle.Fprintln(v.out, v.tr.T("nav.books", nil))

	w := tabwriter.NewWriter(v.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEL\tID\tNAME\tAUTHOR\tCATEGORY\tPUBLISHER\tYEAR\tCOPIES\tSTATUS")
	for _, row := range vm.Rows {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			checkbox(row.Selected), row.Key, row.Name, row.Author, row.Category,
			row.Publisher, row.Year, row.Copies, statusBadge(row.Status))
	}
	w.Flush()

	fmt.Fprintln(v.out, v.tr.T("books.page_info", map[string]string{
		"page":  fmt.Sprint(vm.Pagination.CurrentPage),
		"pages": fmt.Sprint(vm.Pagination.TotalPages),
		"total": fmt.Sprint(vm.Pagination.TotalItems),
	}))
	if vm.SelectedCount > 0 {
		fmt.Fprintf(v.out, "%d selected\n", vm.SelectedCount)
	}
}

func (v *TerminalView) RenderItems(kind controller.EntityKind, vm controller.ItemsView) {
	fmt.Fprintln(v.out)
	plainTitle.Fprintln(v.out, v.tr.T("nav."+kindNavKey(kind), nil))

	w := tabwriter.NewWriter(v.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEL\tID\tNAME")
	for _, row := range vm.Rows {
		fmt.Fprintf(w, "%s\t%d\t%s\n", checkbox(row.Selected), row.ID, row.Name)
	}
	w.Flush()

	if vm.SelectedCount > 0 {
		fmt.Fprintf(v.out, "%d selected\n", vm.SelectedCount)
	}
}

func (v *TerminalView) RenderIssueHistory(rows []controller.IssueRow) {
	fmt.Fprintln(v.out)
	plainTitle.Fprintln(v.out, v.tr.T("nav.issue_history", nil))

	w := tabwriter.NewWriter(v.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tBOOK\tMEMBER\tISSUED\tDUE\tSTATUS")
	for _, row := range rows {
		status := row.Status
		if row.Pending {
			status = issuedBadge.Sprint(status)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Index, row.ID, row.BookName, row.MemberName,
			row.IssueDate, row.ReturnDate, status)
	}
	w.Flush()
}

func (v *TerminalView) RenderLibraryLog(rows []controller.LogRow) {
	fmt.Fprintln(v.out)
	plainTitle.Fprintln(v.out, v.tr.T("nav.library_log", nil))

	w := tabwriter.NewWriter(v.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIMESTAMP\tENTRY")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\n", row.ID, row.Timestamp, row.Content)
	}
	w.Flush()
}

func (v *TerminalView) ShowInfo(d controller.InfoDialog) {
	title := plainTitle
	switch d.Title {
	case v.tr.T("dialog.error", nil):
		title = errorTitle
	case v.tr.T("dialog.success", nil):
		title = successTitle
	}
	fmt.Fprintf(v.out, "\n[%s] %s\n", title.Sprint(d.Title), d.Body)
	if d.Confirm != nil {
		fmt.Fprintf(v.out, "%s / %s\n",
			v.tr.T("dialog.confirm", nil), v.tr.T("dialog.cancel", nil))
	}
}

func (v *TerminalView) ShowConfirm(d controller.ConfirmDialog) {
	fmt.Fprintf(v.out, "\n[%s] %s\n", plainTitle.Sprint(v.tr.T("dialog.confirm", nil)), d.Message)
}

func checkbox(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}

func statusBadge(status string) string {
	switch status {
	case "Available":
		return availableBadge.Sprint(status)
	case "Issued":
		return issuedBadge.Sprint(status)
	}
	return status
}

func kindNavKey(kind controller.EntityKind) string {
	switch kind {
	case controller.KindMember:
		return "members"
	case controller.KindCategory:
		return "categories"
	default:
		return "publishers"
	}
}
