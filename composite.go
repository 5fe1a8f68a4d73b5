package describe

// New builds the composite Describer for a Description. Construction never
// fails. Each evaluation runs the present checks in a fixed order, stopping
// at the first failure: nil check, exact class, inheritance, attributes,
// properties, children. Within a category, names are visited in ascending
// order (sorted once at construction).
func New(d Description) Describer {
	return &compositeDescriber{
		desc:      d,
		attrNames: sortedNames(d.Attributes),
		propNames: sortedNames(d.Properties),
		kidNames:  sortedNames(d.Children),
	}
}

type compositeDescriber struct {
	desc      Description
	attrNames []string
	propNames []string
	kidNames  []string
}

func (c *compositeDescriber) Describe(inst Instance) *Mismatch {
	if inst == nil {
		return newMismatch(CodeNilInstance, nil)
	}
	if want := c.desc.ClassName; want != "" {
		if got := inst.ClassName(); got != want {
			return newMismatch(CodeClassMismatch, map[string]string{"expected": want, "actual": got})
		}
	}
	if want := c.desc.IsA; want != "" {
		if !inst.IsA(want) {
			return newMismatch(CodeNotA, map[string]string{"expected": want, "actual": inst.ClassName()})
		}
	}
	if len(c.attrNames) > 0 {
		// One snapshot per evaluation, not one per attribute.
		attrs := inst.Attributes()
		for _, name := range c.attrNames {
			got, ok := attrs[name]
			if !ok {
				return newMismatch(CodeAttributeMissing, map[string]string{"name": name})
			}
			if m := compareValue(name, c.desc.Attributes[name], got); m != nil {
				return m
			}
		}
	}
	for _, name := range c.propNames {
		got, err := inst.Property(name)
		if err != nil {
			// The host signalling an unknown property is the one failure
			// converted locally into a mismatch rather than propagated.
			return newMismatch(CodePropertyMissing, map[string]string{
				"class": inst.ClassName(),
				"name":  name,
			})
		}
		if m := compareValue(name, c.desc.Properties[name], got); m != nil {
			return m
		}
	}
	for _, name := range c.kidNames {
		cd := c.desc.Children[name]
		if cd == nil {
			// Malformed descriptions mis-evaluate, they never crash.
			continue
		}
		child, ok := inst.FindFirstChild(name)
		var target Instance
		if ok {
			target = child
		}
		if inner := cd.Describe(target); inner != nil {
			if !ok {
				return newMismatch(CodeChildMissing, map[string]string{"name": name})
			}
			return wrapChild(name, inner)
		}
	}
	return nil
}

// compareValue applies the type-then-value rule: a differing kind tag is a
// type mismatch, a matching tag with differing payload a value mismatch.
// Absence is detected by the caller via map membership, never by a falsy
// payload.
func compareValue(name string, want, got Value) *Mismatch {
	if want.Kind() != got.Kind() {
		return newMismatch(CodeTypeMismatch, map[string]string{
			"name":     name,
			"expected": want.TypeName(),
			"actual":   got.TypeName(),
		})
	}
	if !want.Equal(got) {
		return newMismatch(CodeValueMismatch, map[string]string{
			"name":     name,
			"expected": want.String(),
			"actual":   got.String(),
		})
	}
	return nil
}
