// file: internal/controller/bulk.go
// version: 1.1.0
// guid: 3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f

package controller

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// ToggleBookSelect checks or unchecks one book row and re-renders the
// books view so the header checkbox state tracks the change.
func (c *Controller) ToggleBookSelect(key int, on bool) {
	if _, ok := c.st.BookByKey(key); !ok {
		return
	}
	c.st.BookSelection.Set(key, on)
	c.view.RenderBooks(BuildBooks(c.st))
}

// SelectAllBooks checks or unchecks every book on the current page.
// Selection never reaches across pages; a page change starts clean.
func (c *Controller) SelectAllBooks(on bool) {
	c.st.BookSelection.Clear()
	if on {
		for _, b := range c.st.Books {
			c.st.BookSelection.Set(b.Key(), true)
		}
	}
	c.view.RenderBooks(BuildBooks(c.st))
}

// ToggleItemSelect checks or unchecks one member/category/publisher row.
func (c *Controller) ToggleItemSelect(kind EntityKind, id int, on bool) {
	c.st.selectionFor(kind).Set(id, on)
	c.view.RenderItems(kind, BuildItems(c.st, kind))
}

// SelectAllItems checks or unchecks a kind's whole loaded collection.
func (c *Controller) SelectAllItems(kind EntityKind, on bool) {
	sel := c.st.selectionFor(kind)
	sel.Clear()
	if on {
		for _, ref := range c.st.Items(kind) {
			sel.Set(ref.ID, true)
		}
	}
	c.view.RenderItems(kind, BuildItems(c.st, kind))
}

// BulkDeleteBooks stages a confirmed delete of every selected book in a
// single batched API call. With nothing selected it shows an info dialog
// and stages nothing.
func (c *Controller) BulkDeleteBooks(ctx context.Context) {
	ids := c.st.BookSelection.IDs()
	if len(ids) == 0 {
		c.dialogs.Info(c.tr.T("dialog.error", nil), c.tr.T("books.none_selected", nil))
		return
	}

	message := c.tr.T("books.bulk_delete_confirm",
		map[string]string{"count": strconv.Itoa(len(ids))})
	if preview := c.selectedBookNames(ids, 5); preview != "" {
		message += "\n" + preview
	}

	c.dialogs.RequestConfirm(message, func(ctx context.Context) error {
		resp, err := c.api.BulkDeleteBooks(ctx, ids)
		if err != nil {
			c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
			return err
		}
		c.st.BookSelection.Clear()
		if err := c.LoadPage(ctx, 1); err != nil {
			log.Printf("[DEBUG] book list refresh after bulk delete failed: %v", err)
		}
		c.refreshDashboard(ctx)
		c.dialogs.Info(c.tr.T("dialog.success", nil), resp.Message)
		return nil
	})
}

// selectedBookNames renders up to max selected titles for the confirm
// prompt, with a trailing "... and N more" when the selection is larger.
func (c *Controller) selectedBookNames(ids []int, max int) string {
	names := make([]string, 0, max)
	for _, id := range ids {
		if len(names) == max {
			break
		}
		if book, ok := c.st.BookByKey(id); ok {
			names = append(names, "- "+book.BookName)
		}
	}
	if len(names) == 0 {
		return ""
	}
	if rest := len(ids) - len(names); rest > 0 {
		names = append(names, fmt.Sprintf("... and %d more", rest))
	}
	return strings.Join(names, "\n")
}

// BulkDeleteItems stages a confirmed delete of every selected item of a
// kind. The backend has no batched endpoint for these collections, so
// deletes run serially per id, paced by the rate limiter, and stop on
// the first failure.
func (c *Controller) BulkDeleteItems(ctx context.Context, kind EntityKind) {
	spec := kind.spec()
	sel := c.st.selectionFor(kind)
	ids := sel.IDs()
	if len(ids) == 0 {
		c.dialogs.Info(c.tr.T("dialog.error", nil),
			c.tr.T("items.none_selected", map[string]string{"kind": spec.Label}))
		return
	}

	message := c.tr.T("items.bulk_delete_confirm", map[string]string{
		"count": strconv.Itoa(len(ids)),
		"kind":  spec.Label,
	})
	if kind != KindMember {
		message += " " + c.tr.T("items.books_affected", nil)
	}

	c.dialogs.RequestConfirm(message, func(ctx context.Context) error {
		var bar *progressbar.ProgressBar
		if c.showProgress {
			bar = progressbar.Default(int64(len(ids)), "deleting "+spec.Label+"s")
		}
		for _, id := range ids {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
			if err := c.api.DeleteItem(ctx, spec.Endpoint, id); err != nil {
				c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
				return err
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}
		sel.Clear()
		if err := c.refreshItems(ctx, kind); err != nil {
			return err
		}
		c.dialogs.Info(c.tr.T("dialog.success", nil),
			c.tr.T("items.bulk_deleted_success", map[string]string{
				"count": strconv.Itoa(len(ids)),
				"kind":  spec.Label,
			}))
		return nil
	})
}
