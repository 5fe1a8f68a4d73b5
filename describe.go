package describe

// Describer validates a single instance against an expected shape. A nil
// Mismatch means the instance matched; a non-nil Mismatch carries the reason
// it did not. Describers are immutable after construction and safe for
// concurrent use; Describe never mutates the instance.
type Describer interface {
	Describe(inst Instance) *Mismatch
}

// OfClass returns a Describer that matches instances whose class name equals
// className exactly, with no inheritance. Results are memoized per class name
// in a process-lifetime cache; use Memo for an isolated cache.
func OfClass(className string) Describer { return defaultMemo.OfClass(className) }

// WhichIsA returns a Describer that matches instances whose class is
// className or a descendant of it, per the host's IsA relation. Memoized like
// OfClass, in an independent cache.
func WhichIsA(className string) Describer { return defaultMemo.WhichIsA(className) }

// Matches reports whether inst satisfies d.
func Matches(d Describer, inst Instance) bool { return d.Describe(inst) == nil }

// Check evaluates d against inst and returns the classic (matched, reason)
// pair. The reason is empty exactly when matched is true.
func Check(d Describer, inst Instance) (bool, string) {
	if m := d.Describe(inst); m != nil {
		return false, m.Message
	}
	return true, ""
}
