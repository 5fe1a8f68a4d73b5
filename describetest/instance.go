// Package describetest provides an in-memory describe.Instance so the
// library and its hosts can exercise descriptions without a live scene
// graph.
package describetest

import (
	"fmt"

	describe "github.com/rbxkit/describe"
)

// Hierarchy maps a class name to its direct superclass. IsA walks the chain
// from the instance's class upward, so a class is-a itself and every
// ancestor.
type Hierarchy map[string]string

// DefaultHierarchy returns a minimal Roblox-like class tree.
func DefaultHierarchy() Hierarchy {
	return Hierarchy{
		"PVInstance": "Instance",
		"Folder":     "Instance",
		"Model":      "PVInstance",
		"BasePart":   "PVInstance",
		"Part":       "BasePart",
		"MeshPart":   "BasePart",
	}
}

// IsA reports whether class equals ancestor or descends from it.
func (h Hierarchy) IsA(class, ancestor string) bool {
	for {
		if class == ancestor {
			return true
		}
		super, ok := h[class]
		if !ok {
			return false
		}
		class = super
	}
}

// Instance is a mutable in-memory tree node implementing describe.Instance.
// The With* builders return the receiver for chaining.
type Instance struct {
	class     string
	hierarchy Hierarchy
	attrs     map[string]describe.Value
	props     map[string]describe.Value
	children  map[string]*Instance
}

var _ describe.Instance = (*Instance)(nil)

// New returns an instance of the given class using DefaultHierarchy.
func New(className string) *Instance {
	return &Instance{
		class:     className,
		hierarchy: DefaultHierarchy(),
		attrs:     map[string]describe.Value{},
		props:     map[string]describe.Value{},
		children:  map[string]*Instance{},
	}
}

// WithHierarchy replaces the class hierarchy consulted by IsA.
func (i *Instance) WithHierarchy(h Hierarchy) *Instance {
	i.hierarchy = h
	return i
}

// WithAttr sets an attribute value.
func (i *Instance) WithAttr(name string, v describe.Value) *Instance {
	i.attrs[name] = v
	return i
}

// WithProp sets a property value.
func (i *Instance) WithProp(name string, v describe.Value) *Instance {
	i.props[name] = v
	return i
}

// WithChild attaches a child under the given name, replacing any existing
// child of that name.
func (i *Instance) WithChild(name string, child *Instance) *Instance {
	i.children[name] = child
	return i
}

// RemoveChild detaches the named child, if any.
func (i *Instance) RemoveChild(name string) *Instance {
	delete(i.children, name)
	return i
}

func (i *Instance) ClassName() string { return i.class }

func (i *Instance) IsA(className string) bool { return i.hierarchy.IsA(i.class, className) }

// Attributes returns a copy so callers holding the snapshot never observe
// later mutation of the tree.
func (i *Instance) Attributes() map[string]describe.Value {
	out := make(map[string]describe.Value, len(i.attrs))
	for k, v := range i.attrs {
		out[k] = v
	}
	return out
}

func (i *Instance) Property(name string) (describe.Value, error) {
	v, ok := i.props[name]
	if !ok {
		return describe.Value{}, fmt.Errorf("%s is not a valid member of %s", name, i.class)
	}
	return v, nil
}

func (i *Instance) FindFirstChild(name string) (describe.Instance, bool) {
	child, ok := i.children[name]
	if !ok {
		return nil, false
	}
	return child, true
}
