// file: internal/console/console.go
// version: 1.3.0
// guid: 5e6f7a8b-9c0d-1e2f-3a4b-5c6d7e8f9a0b

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jdfalk/library-console/internal/controller"
	"github.com/jdfalk/library-console/internal/i18n"
	"github.com/jdfalk/library-console/internal/models"
)

// pageCommands maps the navigation command words onto pages.
var pageCommands = map[string]controller.Page{
	"dashboard":  controller.PageDashboard,
	"books":      controller.PageBooks,
	"members":    controller.PageMembers,
	"categories": controller.PageCategories,
	"publishers": controller.PagePublishers,
	"history":    controller.PageIssueHistory,
	"log":        controller.PageLibraryLog,
}

// kindCommands maps the item kind words used by add/rename/delete.
var kindCommands = map[string]controller.EntityKind{
	"member":    controller.KindMember,
	"category":  controller.KindCategory,
	"publisher": controller.KindPublisher,
}

// Console runs the interactive command loop. One command executes to
// completion, including its confirmation prompt, before the next line
// is read.
type Console struct {
	ctrl *controller.Controller
	tr   *i18n.Translator
	in   *bufio.Scanner
	out  io.Writer
}

// New creates a Console reading commands from in and writing to out.
func New(ctrl *controller.Controller, tr *i18n.Translator, in io.Reader, out io.Writer) *Console {
	return &Console{
		ctrl: ctrl,
		tr:   tr,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run reads and dispatches commands until quit or EOF.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, c.tr.T("app.title", nil))
	fmt.Fprintln(c.out, `Type "help" for the command list.`)

	for {
		fmt.Fprint(c.out, "> ")
		line, ok := c.readLine()
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		command, args := fields[0], fields[1:]
		if command == "quit" || command == "exit" {
			return nil
		}
		c.dispatch(ctx, command, args)
		c.resolvePending(ctx)
	}
}

func (c *Console) dispatch(ctx context.Context, command string, args []string) {
	if page, ok := pageCommands[command]; ok {
		c.ctrl.ShowPage(ctx, page)
		return
	}

	var err error
	switch command {
	case "help":
		c.printHelp()
	case "next":
		err = c.ctrl.NextPage(ctx)
	case "prev":
		err = c.ctrl.PreviousPage(ctx)
	case "goto":
		err = c.gotoPage(ctx, args)
	case "filter":
		err = c.applyFilter(ctx, args)
	case "clear-filter":
		err = c.ctrl.ClearFilters(ctx)
	case "history-filter":
		c.filterHistory(args)
	case "add-book":
		err = c.addBook(ctx)
	case "edit-book":
		err = c.editBook(ctx, args)
	case "delete-book":
		err = c.withKey(args, func(key int) error {
			return c.ctrl.DeleteBook(ctx, key)
		})
	case "issue":
		err = c.issueBook(ctx, args)
	case "return":
		err = c.returnBook(ctx, args)
	case "return-record":
		err = c.withKey(args, func(id int) error {
			return c.ctrl.ReturnFromHistory(ctx, id, c.prompt("Actual return date (YYYY-MM-DD)"))
		})
	case "add":
		err = c.withKind(args, func(kind controller.EntityKind, rest []string) error {
			return c.ctrl.AddItem(ctx, kind, strings.Join(rest, " "))
		})
	case "rename":
		err = c.withKind(args, func(kind controller.EntityKind, rest []string) error {
			name := strings.Join(rest, " ")
			if name == "" {
				name = c.prompt("Current name")
			}
			return c.ctrl.RenameItem(ctx, kind, name, c.prompt("New name"))
		})
	case "delete":
		err = c.withKind(args, func(kind controller.EntityKind, rest []string) error {
			return c.ctrl.DeleteItem(ctx, kind, strings.Join(rest, " "))
		})
	case "select", "unselect":
		err = c.toggleSelect(args, command == "select")
	case "select-all":
		c.selectAll(true)
	case "select-none":
		c.selectAll(false)
	case "bulk-delete":
		c.bulkDelete(ctx)
	case "log-add":
		err = c.ctrl.AddLogEntry(ctx, strings.Join(args, " "))
	case "lang":
		err = c.switchLanguage(ctx, args)
	case "refresh":
		c.ctrl.ShowPage(ctx, c.ctrl.State().ActivePage)
	default:
		fmt.Fprintf(c.out, "unknown command %q\n", command)
	}

	if err != nil {
		var verr *controller.ValidationError
		var cerr *controller.ConsistencyError
		switch {
		case errors.As(err, &verr):
			fmt.Fprintln(c.out, verr.Message)
		case errors.As(err, &cerr):
			fmt.Fprintln(c.out, cerr.Error())
		}
		// API failures already surfaced through an error dialog.
	}
}

// resolvePending prompts y/N for a confirm dialog staged by the last
// command. Anything but an explicit yes cancels.
func (c *Console) resolvePending(ctx context.Context) {
	dialogs := c.ctrl.Dialogs()
	if !dialogs.HasPending() {
		return
	}
	answer := strings.ToLower(c.prompt(c.tr.T("dialog.confirm", nil) + "? [y/N]"))
	if answer == "y" || answer == "yes" {
		// Failures inside the action already surfaced through a dialog.
		_ = dialogs.ConfirmPending(ctx)
		return
	}
	dialogs.CancelPending()
	fmt.Fprintln(c.out, c.tr.T("dialog.cancel", nil))
}

func (c *Console) gotoPage(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: goto <page-number>")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintln(c.out, "usage: goto <page-number>")
		return nil
	}
	return c.ctrl.LoadPage(ctx, n)
}

// applyFilter parses column=value pairs; bare "filter" shows the active
// set. Values with spaces need the prompt-based form instead.
func (c *Console) applyFilter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		for column, value := range c.ctrl.State().Filters {
			fmt.Fprintf(c.out, "%s=%s\n", column, value)
		}
		return nil
	}

	filters := map[string]string{}
	for column, value := range c.ctrl.State().Filters {
		filters[column] = value
	}
	for _, pair := range args {
		column, value, ok := strings.Cut(pair, "=")
		if !ok {
			fmt.Fprintln(c.out, "usage: filter <column>=<value> ...")
			return nil
		}
		filters[column] = value
	}
	return c.ctrl.ApplyFilters(ctx, filters)
}

// filterHistory narrows the already-loaded issue history locally.
// Recognized keys: book, member, status.
func (c *Console) filterHistory(args []string) {
	var book, member, status string
	for _, pair := range args {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			fmt.Fprintln(c.out, "usage: history-filter [book=..] [member=..] [status=..]")
			return
		}
		switch key {
		case "book":
			book = value
		case "member":
			member = value
		case "status":
			status = value
		default:
			fmt.Fprintf(c.out, "unknown history filter %q\n", key)
			return
		}
	}
	c.ctrl.FilterHistory(book, member, status)
}

func (c *Console) addBook(ctx context.Context) error {
	req := models.BookCreateRequest{}
	req.BookName = c.promptWithSuggestions("Book name", "bookName")
	req.Author = c.promptWithSuggestions("Author", "author")
	req.Category = c.prompt("Category")
	req.Editor = c.prompt("Editor (optional)")
	req.Note = c.prompt("Note (optional)")
	if year := c.promptInt("Year (optional)"); year != nil {
		req.Year = year
	}
	if copies := c.promptInt("Copies (optional)"); copies != nil {
		req.Copies = copies
	}
	return c.ctrl.AddBook(ctx, req)
}

func (c *Console) editBook(ctx context.Context, args []string) error {
	return c.withKey(args, func(key int) error {
		book, ok := c.ctrl.State().BookByKey(key)
		if !ok {
			fmt.Fprintf(c.out, "no book with id %d on this page\n", key)
			return nil
		}
		req := models.BookCreateRequest{
			BookName: defaulted(c.prompt("Book name ["+book.BookName+"]"), book.BookName),
			Author:   defaulted(c.prompt("Author ["+book.Author+"]"), book.Author),
			Category: defaulted(c.prompt("Category ["+book.Category+"]"), book.Category),
			Editor:   defaulted(c.prompt("Editor ["+book.Editor+"]"), book.Editor),
			Note:     defaulted(c.prompt("Note ["+book.Note+"]"), book.Note),
		}
		return c.ctrl.EditBook(ctx, key, req)
	})
}

func (c *Console) issueBook(ctx context.Context, args []string) error {
	return c.withKey(args, func(key int) error {
		member := c.prompt("Member name")
		issueDate := c.prompt("Issue date (YYYY-MM-DD)")
		returnDate := c.prompt("Return date (YYYY-MM-DD)")
		return c.ctrl.IssueBook(ctx, key, member, issueDate, returnDate)
	})
}

func (c *Console) returnBook(ctx context.Context, args []string) error {
	return c.withKey(args, func(key int) error {
		return c.ctrl.ReturnBook(ctx, key, c.prompt("Actual return date (YYYY-MM-DD)"))
	})
}

func (c *Console) toggleSelect(args []string, on bool) error {
	return c.withKey(args, func(id int) error {
		if kind, ok := c.activeKind(); ok {
			c.ctrl.ToggleItemSelect(kind, id, on)
			return nil
		}
		c.ctrl.ToggleBookSelect(id, on)
		return nil
	})
}

func (c *Console) selectAll(on bool) {
	if kind, ok := c.activeKind(); ok {
		c.ctrl.SelectAllItems(kind, on)
		return
	}
	c.ctrl.SelectAllBooks(on)
}

func (c *Console) bulkDelete(ctx context.Context) {
	if kind, ok := c.activeKind(); ok {
		c.ctrl.BulkDeleteItems(ctx, kind)
		return
	}
	c.ctrl.BulkDeleteBooks(ctx)
}

// activeKind maps the active page to an item kind; selection commands
// fall back to the book list on every other page.
func (c *Console) activeKind() (controller.EntityKind, bool) {
	switch c.ctrl.State().ActivePage {
	case controller.PageMembers:
		return controller.KindMember, true
	case controller.PageCategories:
		return controller.KindCategory, true
	case controller.PagePublishers:
		return controller.KindPublisher, true
	}
	return 0, false
}

func (c *Console) switchLanguage(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: lang <code>")
		return nil
	}
	if err := c.tr.Load(args[0]); err != nil {
		return err
	}
	c.ctrl.ShowPage(ctx, c.ctrl.State().ActivePage)
	return nil
}

func (c *Console) withKey(args []string, run func(key int) error) error {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "missing id argument")
		return nil
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "invalid id %q\n", args[0])
		return nil
	}
	return run(key)
}

func (c *Console) withKind(args []string, run func(kind controller.EntityKind, rest []string) error) error {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "usage: <command> member|category|publisher ...")
		return nil
	}
	kind, ok := kindCommands[args[0]]
	if !ok {
		fmt.Fprintf(c.out, "unknown kind %q\n", args[0])
		return nil
	}
	return run(kind, args[1:])
}

func (c *Console) prompt(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	line, _ := c.readLine()
	return strings.TrimSpace(line)
}

// promptWithSuggestions shows likely duplicates from the loaded page
// before accepting the entered value.
func (c *Console) promptWithSuggestions(label, field string) string {
	value := c.prompt(label)
	if matches := c.ctrl.DuplicateSuggestions(field, value); len(matches) > 0 {
		fmt.Fprintf(c.out, "similar existing entries: %s\n", strings.Join(matches, ", "))
	}
	return value
}

func (c *Console) promptInt(label string) *int {
	value := c.prompt(label)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(c.out, "ignoring non-numeric value %q\n", value)
		return nil
	}
	return &n
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Navigation:
  dashboard | books | members | categories | publishers | history | log
  next | prev | goto <n>        book list pagination
  refresh                       reload the active page
Books:
  filter <column>=<value> ...   e.g. filter author=Tolkien status=Available
  clear-filter
  add-book | edit-book <id> | delete-book <id>
  issue <id> | return <id> | return-record <record-id>
Issue history:
  history-filter [book=..] [member=..] [status=Pending|Returned]
Members / categories / publishers:
  add <kind> <name>
  rename <kind> <name>
  delete <kind> <name>
Bulk selection (books or the active item page):
  select <id> | unselect <id> | select-all | select-none
  bulk-delete
Other:
  log-add <text>                append to the library activity log
  lang <code>                   switch language (en, ar)
  quit
`)
}

func defaulted(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
