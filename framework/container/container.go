package container

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sort"
	"sync"
)

// ── Errors ────────────────────────────────────────────────────────────────────

// kindError is a sentinel that can nest under a broader sentinel, so a
// collision is still an instance-id error for errors.Is.
type kindError struct {
	msg    string
	parent error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.parent }

var (
	// ErrUnknownComponent is returned when an operation names a bucket the
	// Container was not built with.
	ErrUnknownComponent = errors.New("container: component does not exist")

	// ErrUnknownInstance is returned when an instance id is missing from
	// its bucket.
	ErrUnknownInstance = errors.New("container: instance does not exist")

	// ErrDuplicateInstance is returned by Add when the id is already taken
	// and no override was requested. It matches ErrUnknownInstance too.
	ErrDuplicateInstance error = &kindError{msg: "container: instance already exists", parent: ErrUnknownInstance}

	// ErrInvalidInstance is returned by Add and Set for a nil handle or one
	// whose dynamic type cannot be compared by identity.
	ErrInvalidInstance = errors.New("container: invalid instance")
)

// ── Instance ──────────────────────────────────────────────────────────────────

// Instance is a live widget handle tracked by the Container.
//
// Destroy releases the widget's own side effects and must be safe to call
// more than once. DestroyAndRemove destroys the widget and asks the
// Container to drop its entry.
//
// Handles are compared by identity, so implementations should be pointers;
// Add and Set reject nil handles and types that are not comparable.
type Instance interface {
	Destroy()
	DestroyAndRemove()
}

// Op names a Container operation for logging and observers.
type Op string

const (
	OpAdd              Op = "add"
	OpGet              Op = "get"
	OpSet              Op = "set"
	OpRemove           Op = "remove"
	OpDestroy          Op = "destroy"
	OpDestroyAndRemove Op = "destroy_and_remove"
	OpInstances        Op = "instances"
)

// Observer receives the outcome of every Container operation and the size
// of a bucket after it changes. Calls happen outside the Container lock.
type Observer interface {
	Observe(op Op, kind Kind, err error)
	Resize(kind Kind, size int)
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container tracks live widget instances by component kind and instance id.
//
// Its bucket set is fixed when New returns. Every failing operation logs a
// warning and reports the failure through its result; none of them panic.
type Container struct {
	mu sync.RWMutex

	// kind → id → instance
	instances map[Kind]map[string]Instance

	logger   *slog.Logger
	observer Observer
	idLength int
	random   io.Reader
}

// New creates a Container with one empty bucket per kind.
//
//	c := container.New(container.WithLogger(logger))
//	id, err := c.Add(container.Modal, modal)
func New(opts ...Option) *Container {
	cfg := options{
		kinds:    Kinds(),
		logger:   slog.Default(),
		idLength: DefaultIDLength,
		random:   rand.Reader,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Container{
		instances: make(map[Kind]map[string]Instance, len(cfg.kinds)),
		logger:    cfg.logger,
		observer:  cfg.observer,
		idLength:  cfg.idLength,
		random:    cfg.random,
	}
	for _, k := range cfg.kinds {
		c.instances[k] = make(map[string]Instance)
	}
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Add registers inst under kind and returns the id it was stored under.
//
// Without WithID a random id is generated. An id that is already taken is
// rejected with ErrDuplicateInstance unless WithOverride is given, in which
// case the previous occupant's DestroyAndRemove runs before the slot is
// replaced. If another handle claims the id while the previous occupant is
// being disposed, Add leaves it in place and fails with ErrDuplicateInstance.
//
//	id, _ := c.Add(container.Dropdown, dd)
//	c.Add(container.Modal, m, container.WithID("checkout"), container.WithOverride())
func (c *Container) Add(kind Kind, inst Instance, opts ...AddOption) (string, error) {
	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(inst); err != nil {
		return "", c.fail(OpAdd, kind, o.id, err)
	}

	c.mu.Lock()
	bucket, ok := c.instances[kind]
	if !ok {
		c.mu.Unlock()
		return "", c.fail(OpAdd, kind, o.id, fmt.Errorf("%w: %s", ErrUnknownComponent, kind))
	}

	id := o.id
	if id == "" {
		generated, err := c.generateID(bucket)
		if err != nil {
			c.mu.Unlock()
			return "", c.fail(OpAdd, kind, "", err)
		}
		id = generated
	} else if prev, taken := bucket[id]; taken {
		if !o.override {
			c.mu.Unlock()
			return "", c.fail(OpAdd, kind, id, fmt.Errorf("%w: %q", ErrDuplicateInstance, id))
		}
		// The previous handle may call back into Remove.
		c.mu.Unlock()
		prev.DestroyAndRemove()
		c.mu.Lock()

		if cur, still := bucket[id]; still && !sameInstance(cur, prev) {
			c.mu.Unlock()
			return "", c.fail(OpAdd, kind, id, fmt.Errorf("%w: %q", ErrDuplicateInstance, id))
		}
	}

	bucket[id] = inst
	size := len(bucket)
	c.mu.Unlock()

	c.succeed(OpAdd, kind, size)
	return id, nil
}

// Set replaces the handle stored at (kind, id). The previous handle is not
// disposed; that stays the caller's responsibility.
func (c *Container) Set(kind Kind, inst Instance, id string) error {
	if err := validate(inst); err != nil {
		return c.fail(OpSet, kind, id, err)
	}
	c.mu.Lock()
	if _, err := c.exists(kind, id); err != nil {
		c.mu.Unlock()
		return c.fail(OpSet, kind, id, err)
	}
	c.instances[kind][id] = inst
	c.mu.Unlock()

	c.observe(OpSet, kind, nil)
	return nil
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// Get returns the handle stored at (kind, id).
func (c *Container) Get(kind Kind, id string) (Instance, bool) {
	c.mu.RLock()
	inst, err := c.exists(kind, id)
	c.mu.RUnlock()

	if err != nil {
		c.fail(OpGet, kind, id, err)
		return nil, false
	}
	c.observe(OpGet, kind, nil)
	return inst, true
}

// Has reports whether (kind, id) is registered. It never logs.
func (c *Container) Has(kind Kind, id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, err := c.exists(kind, id)
	return err == nil
}

// Instances returns the bucket for kind by reference.
func (c *Container) Instances(kind Kind) (map[string]Instance, bool) {
	c.mu.RLock()
	bucket, ok := c.instances[kind]
	c.mu.RUnlock()

	if !ok {
		c.fail(OpInstances, kind, "", fmt.Errorf("%w: %s", ErrUnknownComponent, kind))
		return nil, false
	}
	c.observe(OpInstances, kind, nil)
	return bucket, true
}

// All returns the whole kind → id → instance mapping by reference.
// Mutating it bypasses the Container and is not supported.
func (c *Container) All() map[Kind]map[string]Instance {
	return c.instances
}

// IDs returns a sorted copy of the ids registered under kind. Unlike All
// and Instances it is safe to range over while other goroutines mutate
// the Container.
func (c *Container) IDs(kind Kind) ([]string, bool) {
	c.mu.RLock()
	bucket, ok := c.instances[kind]
	ids := make([]string, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	sort.Strings(ids)
	return ids, true
}

// Len returns the number of instances in the bucket for kind.
func (c *Container) Len(kind Kind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.instances[kind])
}

// ── Disposal ──────────────────────────────────────────────────────────────────

// Remove drops (kind, id) without calling any disposal on the handle.
// Use it for handles the caller already destroyed.
func (c *Container) Remove(kind Kind, id string) error {
	c.mu.Lock()
	if _, err := c.exists(kind, id); err != nil {
		c.mu.Unlock()
		return c.fail(OpRemove, kind, id, err)
	}
	delete(c.instances[kind], id)
	size := len(c.instances[kind])
	c.mu.Unlock()

	c.succeed(OpRemove, kind, size)
	return nil
}

// Destroy calls the handle's Destroy and keeps the entry addressable.
func (c *Container) Destroy(kind Kind, id string) error {
	c.mu.RLock()
	inst, err := c.exists(kind, id)
	c.mu.RUnlock()

	if err != nil {
		return c.fail(OpDestroy, kind, id, err)
	}
	inst.Destroy()
	c.observe(OpDestroy, kind, nil)
	return nil
}

// DestroyAndRemove calls the handle's Destroy and then drops the entry,
// unless Destroy already put a different handle at (kind, id).
func (c *Container) DestroyAndRemove(kind Kind, id string) error {
	c.mu.RLock()
	inst, err := c.exists(kind, id)
	c.mu.RUnlock()

	if err != nil {
		return c.fail(OpDestroyAndRemove, kind, id, err)
	}
	inst.Destroy()

	c.mu.Lock()
	bucket := c.instances[kind]
	if cur, ok := bucket[id]; ok && sameInstance(cur, inst) {
		delete(bucket, id)
	}
	size := len(bucket)
	c.mu.Unlock()

	c.succeed(OpDestroyAndRemove, kind, size)
	return nil
}

// CompareAndRemove drops (kind, id) only while it still holds inst and
// reports whether it did. It is meant for handles removing themselves: a
// mismatch is not a failure, so nothing is logged, and only the bucket size
// reaches the Observer.
func (c *Container) CompareAndRemove(kind Kind, id string, inst Instance) bool {
	c.mu.Lock()
	bucket, ok := c.instances[kind]
	cur, found := bucket[id]
	if !ok || !found || !sameInstance(cur, inst) {
		c.mu.Unlock()
		return false
	}
	delete(bucket, id)
	size := len(bucket)
	c.mu.Unlock()

	if c.observer != nil {
		c.observer.Resize(kind, size)
	}
	return true
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// exists checks the bucket first and the id second (must hold mu).
func (c *Container) exists(kind Kind, id string) (Instance, error) {
	bucket, ok := c.instances[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, kind)
	}
	inst, ok := bucket[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstance, id)
	}
	return inst, nil
}

// sameInstance compares handles by identity. Handles whose dynamic type is
// not comparable never match.
func sameInstance(a, b Instance) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// validate rejects handles that would panic on disposal or comparison.
func validate(inst Instance) error {
	if inst == nil {
		return fmt.Errorf("%w: nil", ErrInvalidInstance)
	}
	v := reflect.ValueOf(inst)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Errorf("%w: nil %T", ErrInvalidInstance, inst)
	}
	if !v.Type().Comparable() {
		return fmt.Errorf("%w: %T is not comparable", ErrInvalidInstance, inst)
	}
	return nil
}

func (c *Container) fail(op Op, kind Kind, id string, err error) error {
	c.logger.Warn(err.Error(),
		"op", string(op),
		"component", kind.String(),
		"id", id,
	)
	c.observe(op, kind, err)
	return err
}

func (c *Container) succeed(op Op, kind Kind, size int) {
	c.observe(op, kind, nil)
	if c.observer != nil {
		c.observer.Resize(kind, size)
	}
}

func (c *Container) observe(op Op, kind Kind, err error) {
	if c.observer != nil {
		c.observer.Observe(op, kind, err)
	}
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Lookup is a typed Get: it returns the handle at (kind, id) asserted to T.
//
//	modal, ok := container.Lookup[*components.Widget](c, container.Modal, "checkout")
func Lookup[T Instance](c *Container, kind Kind, id string) (T, bool) {
	var zero T
	inst, ok := c.Get(kind, id)
	if !ok {
		return zero, false
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
