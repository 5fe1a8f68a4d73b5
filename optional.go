package describe

// Optional wraps a Describer so a nil instance matches trivially. A present
// instance is delegated entirely to inner, result and reason verbatim. This
// is the only construct under which absence of an instance is valid.
func Optional(inner Describer) Describer { return optionalDescriber{inner: inner} }

type optionalDescriber struct{ inner Describer }

func (d optionalDescriber) Describe(inst Instance) *Mismatch {
	if inst == nil {
		return nil
	}
	return d.inner.Describe(inst)
}
