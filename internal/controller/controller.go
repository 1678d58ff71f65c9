// file: internal/controller/controller.go
// version: 1.3.0
// guid: 9e0f1a2b-3c4d-5e6f-7a8b-9c0d1e2f3a4b

// Package controller owns the admin console's in-memory collections and
// drives the fetch/render cycle against the backend API. All mutation
// workflows run to completion before yielding; after any mutating call
// the affected collections are re-fetched rather than hand-patched.
package controller

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jdfalk/library-console/internal/api"
	"github.com/jdfalk/library-console/internal/i18n"
	"github.com/jdfalk/library-console/internal/models"
)

// Controller wires the API client, the owned state and the view.
type Controller struct {
	api     *api.Client
	st      *State
	view    View
	tr      *i18n.Translator
	dialogs *Dialogs

	// limiter paces the serialized per-id bulk deletes so a large
	// selection does not hammer the backend.
	limiter *rate.Limiter

	// showProgress enables terminal progress bars for long-running
	// bulk operations; tests leave it off.
	showProgress bool

	now func() time.Time
}

// New creates a Controller around an authenticated API client.
func New(client *api.Client, view View, tr *i18n.Translator) *Controller {
	return &Controller{
		api:     client,
		st:      NewState(),
		view:    view,
		tr:      tr,
		dialogs: NewDialogs(view),
		limiter: rate.NewLimiter(rate.Limit(5), 1),
		now:     time.Now,
	}
}

// State exposes the owned application state, mostly for tests and the
// console front end's prompts.
func (c *Controller) State() *State {
	return c.st
}

// Dialogs exposes the modal orchestrator.
func (c *Controller) Dialogs() *Dialogs {
	return c.dialogs
}

// EnableProgress turns on progress bars for bulk operations.
func (c *Controller) EnableProgress() {
	c.showProgress = true
}

// Startup validates the persisted token, fetches the dashboard summary,
// then loads all independent collections concurrently before the first
// render. An invalid token yields ErrAuthRequired so the caller can
// clear it and demand a login instead of surfacing a technical error.
func (c *Controller) Startup(ctx context.Context) error {
	if err := c.api.Health(ctx); err != nil {
		if api.IsUnauthorized(err) {
			return ErrAuthRequired
		}
		return err
	}

	if summary, err := c.api.Dashboard(ctx); err != nil {
		log.Printf("[DEBUG] startup: dashboard fetch failed: %v", err)
	} else {
		c.st.Dashboard = *summary
	}

	// The remaining collections are mutually independent, so they are
	// fetched in parallel and awaited jointly. Each loader writes a
	// distinct State field.
	loaders := []func(context.Context) error{
		func(ctx context.Context) error {
			resp, err := c.api.ListBooks(ctx, 1, PerPage, nil)
			if err != nil {
				c.st.resetBooks()
				return err
			}
			c.applyBookPage(resp)
			return nil
		},
		func(ctx context.Context) error {
			members, err := c.api.ListMembers(ctx)
			c.st.Members = members
			return err
		},
		func(ctx context.Context) error {
			categories, err := c.api.ListCategories(ctx)
			c.st.Categories = categories
			return err
		},
		func(ctx context.Context) error {
			publishers, err := c.api.ListPublishers(ctx)
			c.st.Publishers = publishers
			return err
		},
		func(ctx context.Context) error {
			history, err := c.api.IssueHistory(ctx)
			c.st.IssueHistory = history
			return err
		},
		func(ctx context.Context) error {
			logs, err := c.api.LibraryLog(ctx)
			c.st.LibraryLog = logs
			return err
		},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(loaders))
	for i, load := range loaders {
		wg.Add(1)
		go func(i int, load func(context.Context) error) {
			defer wg.Done()
			errs[i] = load(ctx)
		}(i, load)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			log.Printf("[DEBUG] startup: collection load failed: %v", err)
			c.dialogs.Info(c.tr.T("dialog.error", nil), c.tr.T("errors.generic_retry", nil))
			break
		}
	}

	c.view.RenderDashboard(BuildDashboard(c.st.Dashboard))
	return nil
}

// ShowPage makes one page active, fetches its collection behind a
// loading indicator and renders it. The indicator is hidden even when
// the fetch fails; failures surface a non-blocking error dialog. Each
// navigation advances a generation counter so a response that arrives
// after a further navigation is dropped instead of overwriting the new
// page's dataset.
func (c *Controller) ShowPage(ctx context.Context, page Page) {
	c.st.ActivePage = page
	gen := c.st.nextGeneration()

	c.view.ShowLoading(c.tr.T("app.loading", nil))
	defer c.view.HideLoading()

	var err error
	switch page {
	case PageDashboard:
		// Dashboard uses the separately cached summary.
		c.view.RenderDashboard(BuildDashboard(c.st.Dashboard))
		return
	case PageBooks:
		err = c.loadBooks(ctx, gen, 1)
	case PageMembers:
		var members []models.Member
		if members, err = c.api.ListMembers(ctx); err == nil {
			if c.st.stale(gen) {
				c.dropStale(page)
				return
			}
			c.st.Members = members
			c.view.RenderItems(KindMember, BuildItems(c.st, KindMember))
		}
	case PageCategories:
		var categories []models.Category
		if categories, err = c.api.ListCategories(ctx); err == nil {
			if c.st.stale(gen) {
				c.dropStale(page)
				return
			}
			c.st.Categories = categories
			c.view.RenderItems(KindCategory, BuildItems(c.st, KindCategory))
		}
	case PagePublishers:
		var publishers []models.Publisher
		if publishers, err = c.api.ListPublishers(ctx); err == nil {
			if c.st.stale(gen) {
				c.dropStale(page)
				return
			}
			c.st.Publishers = publishers
			c.view.RenderItems(KindPublisher, BuildItems(c.st, KindPublisher))
		}
	case PageIssueHistory:
		var history []models.IssueRecord
		if history, err = c.api.IssueHistory(ctx); err == nil {
			if c.st.stale(gen) {
				c.dropStale(page)
				return
			}
			c.st.IssueHistory = history
			c.view.RenderIssueHistory(BuildIssueRows(c.st.IssueHistory))
		}
	case PageLibraryLog:
		var logs []models.LogEntry
		if logs, err = c.api.LibraryLog(ctx); err == nil {
			if c.st.stale(gen) {
				c.dropStale(page)
				return
			}
			c.st.LibraryLog = logs
			c.view.RenderLibraryLog(BuildLogRows(c.st.LibraryLog))
		}
	}

	if err != nil {
		log.Printf("[DEBUG] failed to load %s: %v", page, err)
		c.dialogs.Info(c.tr.T("dialog.error", nil),
			c.tr.T("errors.load_failed", map[string]string{"page": string(page)}))
	}
}

func (c *Controller) dropStale(page Page) {
	log.Printf("[DEBUG] dropping stale %s response after navigation", page)
}

// refreshDashboard re-fetches the summary cache after a mutation.
func (c *Controller) refreshDashboard(ctx context.Context) {
	summary, err := c.api.Dashboard(ctx)
	if err != nil {
		log.Printf("[DEBUG] dashboard refresh failed: %v", err)
		return
	}
	c.st.Dashboard = *summary
	c.view.RenderDashboard(BuildDashboard(c.st.Dashboard))
}

// refreshIssueHistory re-fetches and re-renders the issue history.
func (c *Controller) refreshIssueHistory(ctx context.Context) error {
	history, err := c.api.IssueHistory(ctx)
	if err != nil {
		return err
	}
	c.st.IssueHistory = history
	c.view.RenderIssueHistory(BuildIssueRows(c.st.IssueHistory))
	return nil
}

// FilterHistory re-renders the issue history narrowed by book name,
// member name and status. Filtering is local; no fetch happens.
func (c *Controller) FilterHistory(bookName, memberName, status string) {
	filtered := FilterIssueHistory(c.st.IssueHistory, bookName, memberName, status)
	c.view.RenderIssueHistory(BuildIssueRows(filtered))
}

// AddLogEntry appends to the activity log and reloads it.
func (c *Controller) AddLogEntry(ctx context.Context, content string) error {
	if content == "" {
		return &ValidationError{Field: "content", Message: "log entry content is required"}
	}
	if err := c.api.AddLogEntry(ctx, content); err != nil {
		c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
		return err
	}
	logs, err := c.api.LibraryLog(ctx)
	if err != nil {
		return err
	}
	c.st.LibraryLog = logs
	c.view.RenderLibraryLog(BuildLogRows(c.st.LibraryLog))
	return nil
}
