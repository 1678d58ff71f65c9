// file: internal/controller/catalog.go
// version: 1.2.0
// guid: 2b3c4d5e-6f7a-8b9c-0d1e-2f3a4b5c6d7e

package controller

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// EntityKind is the closed set of item kinds sharing the uniform
// add/rename/delete shape. Adding a kind means adding a kindSpecs row,
// not new control flow.
type EntityKind int

const (
	KindMember EntityKind = iota
	KindCategory
	KindPublisher
)

func (k EntityKind) String() string {
	return k.spec().Label
}

// kindSpec maps a kind onto its collection endpoint, display labels and
// default create payload.
type kindSpec struct {
	Endpoint       string
	Label          string
	Title          string
	defaultPayload func(name string, now time.Time) interface{}
}

var kindSpecs = map[EntityKind]kindSpec{
	KindMember: {
		Endpoint: "/members",
		Label:    "member",
		Title:    "Member",
		defaultPayload: func(name string, now time.Time) interface{} {
			// Placeholder email synthesized from name + timestamp; the
			// backend requires one but the console only collects a name.
			email := fmt.Sprintf("%s_%d@example.com",
				strings.ReplaceAll(strings.ToLower(name), " ", ""), now.UnixMilli())
			return map[string]string{"name": name, "email": email, "phone": "", "address": ""}
		},
	},
	KindCategory: {
		Endpoint: "/categories",
		Label:    "category",
		Title:    "Category",
		defaultPayload: func(name string, _ time.Time) interface{} {
			return map[string]string{"name": name, "description": ""}
		},
	},
	KindPublisher: {
		Endpoint: "/publishers",
		Label:    "publisher",
		Title:    "Publisher",
		defaultPayload: func(name string, _ time.Time) interface{} {
			return map[string]string{"name": name, "address": "", "contact_info": ""}
		},
	},
}

func (k EntityKind) spec() kindSpec {
	return kindSpecs[k]
}

// ItemRef is the identity pair the uniform CRUD flows operate on.
type ItemRef struct {
	ID   int
	Name string
}

// Items returns the loaded collection for a kind as identity pairs.
func (s *State) Items(kind EntityKind) []ItemRef {
	switch kind {
	case KindMember:
		refs := make([]ItemRef, 0, len(s.Members))
		for _, m := range s.Members {
			refs = append(refs, ItemRef{ID: m.ID, Name: m.Name})
		}
		return refs
	case KindCategory:
		refs := make([]ItemRef, 0, len(s.Categories))
		for _, c := range s.Categories {
			refs = append(refs, ItemRef{ID: c.ID, Name: c.Name})
		}
		return refs
	case KindPublisher:
		refs := make([]ItemRef, 0, len(s.Publishers))
		for _, p := range s.Publishers {
			refs = append(refs, ItemRef{ID: p.ID, Name: p.Name})
		}
		return refs
	}
	return nil
}

// ItemByName finds a loaded item of a kind by exact name.
func (s *State) ItemByName(kind EntityKind, name string) (ItemRef, bool) {
	for _, ref := range s.Items(kind) {
		if ref.Name == name {
			return ref, true
		}
	}
	return ItemRef{}, false
}

func (s *State) selectionFor(kind EntityKind) *Selection {
	switch kind {
	case KindMember:
		return s.MemberSelection
	case KindCategory:
		return s.CategorySelection
	default:
		return s.PublisherSelection
	}
}

// refreshItems re-fetches and re-renders one kind's own collection.
// Books are deliberately not cascade-refreshed even though deleting a
// category or publisher affects book display fields.
func (c *Controller) refreshItems(ctx context.Context, kind EntityKind) error {
	switch kind {
	case KindMember:
		members, err := c.api.ListMembers(ctx)
		if err != nil {
			return err
		}
		c.st.Members = members
	case KindCategory:
		categories, err := c.api.ListCategories(ctx)
		if err != nil {
			return err
		}
		c.st.Categories = categories
	case KindPublisher:
		publishers, err := c.api.ListPublishers(ctx)
		if err != nil {
			return err
		}
		c.st.Publishers = publishers
	}
	c.view.RenderItems(kind, BuildItems(c.st, kind))
	return nil
}

// AddItem creates a member/category/publisher from a bare name plus the
// kind's defaulted fields. An empty name is rejected client-side.
func (c *Controller) AddItem(ctx context.Context, kind EntityKind, name string) error {
	name = strings.TrimSpace(name)
	spec := kind.spec()
	if name == "" {
		msg := c.tr.T("items.name_required", map[string]string{"kind": spec.Label})
		c.dialogs.Info(c.tr.T("dialog.error", nil), msg)
		return &ValidationError{Field: "name", Message: msg}
	}

	if err := c.api.CreateItem(ctx, spec.Endpoint, spec.defaultPayload(name, c.now())); err != nil {
		c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
		return err
	}
	if err := c.refreshItems(ctx, kind); err != nil {
		return err
	}
	c.dialogs.Info(c.tr.T("dialog.success", nil),
		c.tr.T("items.added_success", map[string]string{"kind": spec.Title, "name": name}))
	return nil
}

// RenameItem renames an item looked up by its current name. A collision
// against an already-loaded name of the same kind is rejected here; the
// authoritative check remains server-side.
func (c *Controller) RenameItem(ctx context.Context, kind EntityKind, name, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" || newName == name {
		return nil
	}
	spec := kind.spec()

	if _, exists := c.st.ItemByName(kind, newName); exists {
		msg := c.tr.T("items.name_exists", map[string]string{"kind": spec.Label})
		c.dialogs.Info(c.tr.T("dialog.error", nil), msg)
		return &ValidationError{Field: "name", Message: msg}
	}

	ref, ok := c.st.ItemByName(kind, name)
	if !ok {
		return &ConsistencyError{Detail: spec.Label + " not found: " + name}
	}

	if err := c.api.RenameItem(ctx, spec.Endpoint, ref.ID, newName); err != nil {
		c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
		return err
	}
	if err := c.refreshItems(ctx, kind); err != nil {
		return err
	}
	c.dialogs.Info(c.tr.T("dialog.success", nil),
		c.tr.T("items.renamed_success", map[string]string{
			"kind": spec.Title, "name": name, "newName": newName,
		}))
	return nil
}

// DeleteItem stages a confirmed delete of one item by name, warning
// that dependent books are affected.
func (c *Controller) DeleteItem(ctx context.Context, kind EntityKind, name string) error {
	spec := kind.spec()
	ref, ok := c.st.ItemByName(kind, name)
	if !ok {
		return &ConsistencyError{Detail: spec.Label + " not found: " + name}
	}

	message := c.tr.T("items.delete_confirm", map[string]string{"kind": spec.Label, "name": name})
	if kind != KindMember {
		message += " " + c.tr.T("items.books_affected", nil)
	}
	c.dialogs.RequestConfirm(message, func(ctx context.Context) error {
		if err := c.api.DeleteItem(ctx, spec.Endpoint, ref.ID); err != nil {
			c.dialogs.Info(c.tr.T("dialog.error", nil), err.Error())
			return err
		}
		if err := c.refreshItems(ctx, kind); err != nil {
			return err
		}
		c.dialogs.Info(c.tr.T("dialog.success", nil),
			c.tr.T("items.deleted_success", map[string]string{"kind": spec.Title, "name": name}))
		return nil
	})
	return nil
}
