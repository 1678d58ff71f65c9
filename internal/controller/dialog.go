// file: internal/controller/dialog.go
// version: 1.1.0
// guid: 6b7c8d9e-0f1a-2b3c-4d5e-6f7a8b9c0d1e

package controller

import "context"

// Action is a deferred dialog action, run when the user confirms.
type Action func(ctx context.Context) error

// InfoDialog carries a titled message and an optional confirm action.
// Closing without confirming never runs the action.
type InfoDialog struct {
	Title   string
	Body    string
	Confirm Action
}

// ConfirmDialog carries a plain message whose pending action is staged
// on the controller until resolved.
type ConfirmDialog struct {
	Message string
}

// Dialogs orchestrates the two modal types. Only one confirm action may
// be staged at a time; staging a second overwrites the first, it is not
// queued.
type Dialogs struct {
	view    View
	pending Action
}

// NewDialogs wires dialog presentation to a view.
func NewDialogs(view View) *Dialogs {
	return &Dialogs{view: view}
}

// Info shows an info dialog with no confirm action.
func (d *Dialogs) Info(title, body string) {
	d.view.ShowInfo(InfoDialog{Title: title, Body: body})
}

// InfoWithConfirm shows an info dialog carrying an optional confirm
// action. The action is staged like a confirm dialog's, replacing any
// previously staged one; closing the dialog without confirming never
// runs it.
func (d *Dialogs) InfoWithConfirm(title, body string, confirm Action) {
	d.pending = confirm
	d.view.ShowInfo(InfoDialog{Title: title, Body: body, Confirm: confirm})
}

// RequestConfirm stages an action behind a confirmation message,
// replacing any previously staged action.
func (d *Dialogs) RequestConfirm(message string, action Action) {
	d.pending = action
	d.view.ShowConfirm(ConfirmDialog{Message: message})
}

// HasPending reports whether a confirm action is staged.
func (d *Dialogs) HasPending() bool {
	return d.pending != nil
}

// ConfirmPending runs the staged action and clears it. The action is
// cleared even when it fails; every failure is terminal for that user
// action until manually retried.
func (d *Dialogs) ConfirmPending(ctx context.Context) error {
	action := d.pending
	d.pending = nil
	if action == nil {
		return nil
	}
	return action(ctx)
}

// CancelPending clears the staged action without invoking it.
func (d *Dialogs) CancelPending() {
	d.pending = nil
}
