package clip

import (
	"testing"

	"github.com/lumenforge/luxd/internal/color"
	"github.com/lumenforge/luxd/internal/fixture"
)

// dimmerRig patches n single-channel dimmer fixtures at consecutive
// addresses in universe 1.
func dimmerRig(t *testing.T, n int) *fixture.Rig {
	t.Helper()

	typ, err := fixture.NewType(fixture.Dimmer{})
	if err != nil {
		t.Fatalf("NewType: %v", err)
	}

	rig := fixture.NewRig()
	for i := 0; i < n; i++ {
		if _, err := rig.Patch(typ, 1, 1+i); err != nil {
			t.Fatalf("Patch %d: %v", i, err)
		}
	}
	return rig
}

// barRig patches one pixel-bar fixture with the given number of colour
// segments.
func barRig(t *testing.T, segments int) *fixture.Rig {
	t.Helper()

	typ, err := fixture.NewType(
		fixture.Dimmer{},
		fixture.ColorAttr{Target: color.TargetRGB, Segs: segments},
	)
	if err != nil {
		t.Fatalf("NewType: %v", err)
	}

	rig := fixture.NewRig()
	if _, err := rig.Patch(typ, 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	return rig
}
