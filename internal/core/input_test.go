package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionRight)
	if !f.Has(ActionJump) || !f.Has(ActionRight) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionLeft) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionRight) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFramePresses(t *testing.T) {
	var f InputFrame

	if f.Presses(ActionJump) != 0 {
		t.Error("zero frame should have no presses")
	}

	f.Set(ActionRight)
	if got := f.Presses(ActionRight); got != 1 {
		t.Errorf("Set action Presses = %d, expected 1", got)
	}

	f.Press(ActionJump)
	f.Press(ActionJump)
	if got := f.Presses(ActionJump); got != 2 || !f.Has(ActionJump) {
		t.Errorf("two presses: Presses = %d, Has = %v; expected 2, true", got, f.Has(ActionJump))
	}

	clone := f.Clone()
	f.Press(ActionJump)
	if got := clone.Presses(ActionJump); got != 2 {
		t.Errorf("clone Presses = %d, expected its own count of 2", got)
	}

	f.Clear()
	if f.Presses(ActionJump) != 0 || f.Has(ActionJump) {
		t.Error("Clear should drop presses")
	}
}

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Click(); ok {
		t.Fatal("new frame should have no click")
	}

	f.ClickAt(Vec2{X: 10, Y: 20})
	f.ClickAt(Vec2{X: 30, Y: 40})
	p, ok := f.Click()
	if !ok || p != (Vec2{X: 30, Y: 40}) {
		t.Errorf("Click() = %v, %v; expected last click (30, 40)", p, ok)
	}

	clone := f.Clone()
	f.Clear()
	if _, ok := f.Click(); ok {
		t.Error("Clear should drop the click")
	}
	if p, ok := clone.Click(); !ok || p.X != 30 {
		t.Error("Clone should keep its own copy of the click")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionLeft:  "Left",
		ActionRight: "Right",
		ActionJump:  "Jump",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, a.String(), want)
		}
	}
}
