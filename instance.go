package describe

// Instance is the host-supplied, tree-shaped object under validation. The
// library only ever reads through this surface; instances are borrowed for
// the duration of a single Describe call and never created, mutated, or
// destroyed here. Absence of an instance is expressed as a nil Instance.
type Instance interface {
	// ClassName returns the instance's exact class identifier.
	ClassName() string
	// IsA reports whether the instance's class is className or a descendant
	// of it.
	IsA(className string) bool
	// Attributes returns a snapshot of the instance's attribute map.
	Attributes() map[string]Value
	// Property reads the named property, returning an error when the property
	// does not exist or is not accessible on the instance's class.
	Property(name string) (Value, error)
	// FindFirstChild returns the single child with exactly the given name,
	// if any.
	FindFirstChild(name string) (Instance, bool)
}
