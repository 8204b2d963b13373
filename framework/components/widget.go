// Package components provides the widget handles the Container tracks.
//
// Each constructor registers the new widget with a Container and returns
// it. Teardown work (listener removal, timers, ...) is attached with
// OnDestroy and runs once, however often Destroy is called.
//
//	modal, err := components.NewModal(c, components.Options{ID: "checkout"})
//	modal.OnDestroy(stopBackdropListener)
//	...
//	modal.DestroyAndRemove()
package components

import (
	"sync"

	"github.com/km-arc/go-sui/framework/container"
)

// Options mirrors the kit's InstanceOptions.
type Options struct {
	// ID is the instance id; empty means the Container generates one.
	ID string
	// Override replaces an instance already registered under ID.
	Override bool
}

// Widget is a registered widget handle. It satisfies container.Instance.
type Widget struct {
	kind      container.Kind
	id        string
	container *container.Container

	mu        sync.Mutex
	destroyed bool
	teardown  []func()
}

var _ container.Instance = (*Widget)(nil)

// New registers a widget of the given kind with c. A nil c means
// container.Default().
func New(c *container.Container, kind container.Kind, opts Options) (*Widget, error) {
	if c == nil {
		c = container.Default()
	}
	w := &Widget{kind: kind, container: c}

	addOpts := []container.AddOption{container.WithID(opts.ID)}
	if opts.Override {
		addOpts = append(addOpts, container.WithOverride())
	}
	id, err := c.Add(kind, w, addOpts...)
	if err != nil {
		return nil, err
	}
	w.id = id
	return w, nil
}

// ── Constructors per kind ─────────────────────────────────────────────────────

func NewAccordion(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Accordion, opts)
}

func NewCarousel(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Carousel, opts)
}

func NewCollapse(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Collapse, opts)
}

func NewDismiss(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Dismiss, opts)
}

func NewDrawer(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Drawer, opts)
}

func NewDropdown(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Dropdown, opts)
}

func NewModal(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Modal, opts)
}

func NewPopover(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Popover, opts)
}

func NewTabs(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Tabs, opts)
}

func NewTooltip(c *container.Container, opts Options) (*Widget, error) {
	return New(c, container.Tooltip, opts)
}

// ── Accessors ─────────────────────────────────────────────────────────────────

// Kind returns the widget's component kind.
func (w *Widget) Kind() container.Kind { return w.kind }

// ID returns the id the widget is registered under.
func (w *Widget) ID() string { return w.id }

// Destroyed reports whether Destroy has run.
func (w *Widget) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

// ── Lifecycle ─────────────────────────────────────────────────────────────────

// OnDestroy registers fn to run when the widget is destroyed. Hooks run in
// reverse registration order. If the widget is already destroyed fn runs
// immediately.
func (w *Widget) OnDestroy(fn func()) {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		fn()
		return
	}
	w.teardown = append(w.teardown, fn)
	w.mu.Unlock()
}

// Destroy runs the teardown hooks once. Later calls do nothing.
func (w *Widget) Destroy() {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.destroyed = true
	hooks := w.teardown
	w.teardown = nil
	w.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}

// DestroyAndRemove destroys the widget and drops it from its Container.
// The entry is only removed while it still points at w, so a widget that
// was replaced through an override never evicts its successor.
func (w *Widget) DestroyAndRemove() {
	w.Destroy()
	w.container.CompareAndRemove(w.kind, w.id, w)
}
