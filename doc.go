package describe

// Package describe provides:
//
// - Declarative structural validation of scene-graph instance trees via
//   Describer (New/OfClass/WhichIsA/Optional)
// - A stable mismatch model via Mismatch (path, code, human-readable reason)
// - A tagged dynamic Value type for attribute/property comparison
//   (type mismatch vs value mismatch)
// - Memoized leaf describers through an injectable Memo cache
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place description-document loading under codec/, message rendering under
//   i18n/, and the in-memory test tree under describetest/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := describe.New(describe.Description{
//		ClassName: "Folder",
//		Children: map[string]describe.Describer{
//			"Obby":  describe.OfClass("Folder"),
//			"Frame": describe.OfClass("Model"),
//		},
//	})
//	if m := d.Describe(inst); m != nil {
//		reportf("bad playset: %s", m.Message)
//	}
