package describetest_test

import (
	"strings"
	"testing"

	describe "github.com/rbxkit/describe"
	"github.com/rbxkit/describe/describetest"
)

func TestHierarchy_IsA(t *testing.T) {
	h := describetest.DefaultHierarchy()
	cases := []struct {
		class, ancestor string
		want            bool
	}{
		{"Part", "Part", true},
		{"Part", "BasePart", true},
		{"Part", "PVInstance", true},
		{"Part", "Instance", true},
		{"Part", "Folder", false},
		{"Folder", "Instance", true},
		{"Folder", "PVInstance", false},
		{"Unknown", "Instance", false},
	}
	for _, c := range cases {
		if got := h.IsA(c.class, c.ancestor); got != c.want {
			t.Fatalf("IsA(%s, %s) = %v, want %v", c.class, c.ancestor, got, c.want)
		}
	}
}

func TestInstance_PropertyError(t *testing.T) {
	inst := describetest.New("Part")
	if _, err := inst.Property("Anchored"); err == nil {
		t.Fatalf("expected an error for an unknown property")
	} else if !strings.Contains(err.Error(), "Anchored") || !strings.Contains(err.Error(), "Part") {
		t.Fatalf("error should name the property and class, got %q", err.Error())
	}
	inst.WithProp("Anchored", describe.Bool(true))
	v, err := inst.Property("Anchored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Equal(describe.Bool(true)) {
		t.Fatalf("unexpected property value %v", v)
	}
}

func TestInstance_AttributesSnapshot(t *testing.T) {
	inst := describetest.New("Folder").WithAttr("Difficulty", describe.Number(3))
	snap := inst.Attributes()
	snap["Difficulty"] = describe.Number(9)
	if got := inst.Attributes()["Difficulty"]; !got.Equal(describe.Number(3)) {
		t.Fatalf("mutating the snapshot must not touch the instance, got %v", got)
	}
}

func TestInstance_FindFirstChild(t *testing.T) {
	child := describetest.New("Model")
	inst := describetest.New("Folder").WithChild("Frame", child)
	got, ok := inst.FindFirstChild("Frame")
	if !ok || got.ClassName() != "Model" {
		t.Fatalf("expected the Frame child, got (%v, %v)", got, ok)
	}
	if _, ok := inst.FindFirstChild("frame"); ok {
		t.Fatalf("child lookup must be exact-name")
	}
	inst.RemoveChild("Frame")
	if _, ok := inst.FindFirstChild("Frame"); ok {
		t.Fatalf("expected the child to be removed")
	}
}
