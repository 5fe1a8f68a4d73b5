package describe

import "sort"

// Description is the expected shape of one instance. Every field is optional;
// the zero Description matches any non-nil instance. Descriptions are
// captured by New at construction time and never validated: a malformed
// description produces a describer that may mis-evaluate, never one that
// panics.
type Description struct {
	ClassName  string               // Exact class check; "" skips it.
	IsA        string               // Inheritance check; "" skips it.
	Attributes map[string]Value     // Expected attribute values by name.
	Properties map[string]Value     // Expected property values by name.
	Children   map[string]Describer // Child describers by exact child name.
}

// sortedNames returns map keys in ascending order so that the "first failing
// entry" of a check category is deterministic across evaluations.
func sortedNames[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
