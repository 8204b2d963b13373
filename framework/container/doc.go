// Package container provides the component instance Container of the UI kit.
//
// # Overview
//
// Every widget (Accordion, Modal, Dropdown, ...) registers itself with the
// Container when it is constructed and leaves it when it is disposed. The
// Container is a two-level mapping: component Kind → instance id → Instance.
// The set of kinds is fixed when the Container is built.
//
// The Container does not own widget resources. It only keeps handles and
// forwards Destroy calls to them.
//
// # Lifecycle
//
//  1. Create: c := container.New()  (or container.Default())
//  2. Widgets register: id, err := c.Add(container.Modal, modal)
//  3. Host code looks them up: m, ok := c.Get(container.Modal, id)
//  4. Disposal: c.DestroyAndRemove(container.Modal, id)
//
// # Registration
//
//	// Generated id (9 lowercase alphanumeric characters)
//	id, _ := c.Add(container.Dropdown, dd)
//
//	// Explicit id; a second Add with the same id is rejected
//	c.Add(container.Modal, m, container.WithID("checkout"))
//
//	// Explicit id with override; the old occupant's DestroyAndRemove runs first
//	c.Add(container.Modal, m2, container.WithID("checkout"), container.WithOverride())
//
// # Failures
//
// Nothing panics. A failing operation logs a warning through slog and
// reports the failure in its result: Add, Set, Remove, Destroy and
// DestroyAndRemove return ErrUnknownComponent or ErrUnknownInstance
// (ErrDuplicateInstance for Add collisions), Get returns (nil, false).
// Has never logs.
//
//	if err := c.Remove(container.Tabs, "nav"); errors.Is(err, container.ErrUnknownInstance) {
//	    // already gone
//	}
//
// # Disposal
//
//	c.Remove(kind, id)           // drop entry, no Destroy call
//	c.Destroy(kind, id)          // Destroy, entry stays
//	c.DestroyAndRemove(kind, id) // Destroy, then drop entry
//
// Set replaces a handle in place and does not dispose the previous one.
package container
