package container

import (
	"fmt"
	"strings"
)

// Kind identifies a component type and names one bucket of the Container.
type Kind uint8

// ── Component kinds ───────────────────────────────────────────────────────────

const (
	Accordion Kind = iota + 1
	Carousel
	Collapse
	Dismiss
	Drawer
	Dropdown
	Modal
	Popover
	Tabs
	Tooltip
)

var kindNames = map[Kind]string{
	Accordion: "Accordion",
	Carousel:  "Carousel",
	Collapse:  "Collapse",
	Dismiss:   "Dismiss",
	Drawer:    "Drawer",
	Dropdown:  "Dropdown",
	Modal:     "Modal",
	Popover:   "Popover",
	Tabs:      "Tabs",
	Tooltip:   "Tooltip",
}

// Kinds returns every known component kind in declaration order.
func Kinds() []Kind {
	return []Kind{Accordion, Carousel, Collapse, Dismiss, Drawer, Dropdown, Modal, Popover, Tabs, Tooltip}
}

// String returns the global name the kit uses for k, e.g. "Modal".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a component name back to its Kind. Matching ignores case,
// so "modal" and "Modal" both resolve.
//
//	kind, err := container.ParseKind("Dropdown")
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
}
