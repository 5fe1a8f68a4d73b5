package describe

import "github.com/rbxkit/describe/i18n"

// Mismatch codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNilInstance      = "nil_instance"
	CodeClassMismatch    = "class_mismatch"
	CodeNotA             = "not_a"
	CodeAttributeMissing = "attribute_missing"
	CodePropertyMissing  = "property_missing"
	CodeTypeMismatch     = "type_mismatch"
	CodeValueMismatch    = "value_mismatch"
	CodeChildMissing     = "child_missing"
	CodeChildMismatch    = "child_mismatch"
)

// Mismatch is the single failure taxonomy of the library: why one instance
// did not satisfy one Describer. A Describer returns nil on match, so a
// Mismatch always carries a reason.
type Mismatch struct {
	Path    string            // Pointer to the failing child (for example: /Obby/Frame); "/" at the root.
	Code    string            // One of the codes listed above.
	Message string            // Human-readable reason, rendered via i18n.
	// Params carries structured parameters (e.g., {"expected":"Folder",
	// "actual":"Model"}) for i18n and observability.
	Params map[string]string
	Cause  *Mismatch // Nested child mismatch, when Code is child_mismatch.
}

// Error makes Mismatch usable as an error value.
func (m *Mismatch) Error() string { return m.Message }

func newMismatch(code string, params map[string]string) *Mismatch {
	return &Mismatch{Path: "/", Code: code, Message: i18n.T(code, params), Params: params}
}

// wrapChild wraps a child's mismatch with the failing child's name, nesting
// the inner reason textually and rebasing the inner path under "/name".
func wrapChild(name string, inner *Mismatch) *Mismatch {
	m := newMismatch(CodeChildMismatch, map[string]string{
		"name":   name,
		"reason": inner.Message,
	})
	m.Path = rebasePath(name, inner.Path)
	m.Cause = inner
	return m
}

func rebasePath(name, childPath string) string {
	base := "/" + name
	if childPath == "" || childPath == "/" {
		return base
	}
	if childPath[0] == '/' {
		return base + childPath
	}
	return base + "/" + childPath
}
