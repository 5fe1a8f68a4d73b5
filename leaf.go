package describe

// classDescriber matches the exact class name, with no inheritance.
type classDescriber struct{ className string }

func (d classDescriber) Describe(inst Instance) *Mismatch {
	if inst == nil {
		return newMismatch(CodeNilInstance, nil)
	}
	if got := inst.ClassName(); got != d.className {
		return newMismatch(CodeClassMismatch, map[string]string{"expected": d.className, "actual": got})
	}
	return nil
}

// isADescriber matches the class or any descendant, per the host's IsA
// relation.
type isADescriber struct{ className string }

func (d isADescriber) Describe(inst Instance) *Mismatch {
	if inst == nil {
		return newMismatch(CodeNilInstance, nil)
	}
	if !inst.IsA(d.className) {
		return newMismatch(CodeNotA, map[string]string{"expected": d.className, "actual": inst.ClassName()})
	}
	return nil
}
