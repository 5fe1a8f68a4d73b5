package describe

import "sync"

// Memo caches leaf describers per class name so repeated construction with
// the same name returns the same instance. Both caches are write-once per key
// and never evicted; racing re-derivation of the same key is idempotent, so a
// simple insert-if-absent under RWMutex is enough. Reference identity of the
// returned describers is an optimization only and carries no equality
// semantics.
type Memo struct {
	mu    sync.RWMutex
	class map[string]Describer
	isA   map[string]Describer
}

// NewMemo returns an empty, isolated cache. Tests construct their own Memo to
// avoid cross-test pollution of the package-level default.
func NewMemo() *Memo {
	return &Memo{
		class: map[string]Describer{},
		isA:   map[string]Describer{},
	}
}

// OfClass returns the memoized exact-class describer for className.
func (m *Memo) OfClass(className string) Describer {
	return m.memoize(m.class, className, func() Describer { return classDescriber{className} })
}

// WhichIsA returns the memoized inheritance describer for className, from a
// cache independent of OfClass.
func (m *Memo) WhichIsA(className string) Describer {
	return m.memoize(m.isA, className, func() Describer { return isADescriber{className} })
}

func (m *Memo) memoize(cache map[string]Describer, key string, build func() Describer) Describer {
	m.mu.RLock()
	if d, ok := cache[key]; ok {
		m.mu.RUnlock()
		return d
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := cache[key]; ok { // double-check
		return d
	}
	d := build()
	cache[key] = d
	return d
}

// defaultMemo backs the package-level OfClass/WhichIsA for process-lifetime
// memoization.
var defaultMemo = NewMemo()
