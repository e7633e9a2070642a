package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("Has() should report set actions")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) = true, expected false")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionSlotIndex(t *testing.T) {
	tests := []struct {
		action Action
		index  int
		ok     bool
	}{
		{ActionSlot1, 0, true},
		{ActionSlot2, 1, true},
		{ActionSlot3, 2, true},
		{ActionConfirm, 0, false},
	}

	for _, tt := range tests {
		index, ok := tt.action.SlotIndex()
		if index != tt.index || ok != tt.ok {
			t.Errorf("%v.SlotIndex() = (%d, %v), expected (%d, %v)", tt.action, index, ok, tt.index, tt.ok)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionNext.String() != "Next" {
		t.Errorf("ActionNext.String() = %q", ActionNext.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
