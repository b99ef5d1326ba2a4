package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame reports Fire held")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set() actions not held")
	}
	if f.Has(ActionRight) {
		t.Error("Right held without being set")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionLeft) {
		t.Error("Clear() left actions held")
	}
}

func TestPadTrigger(t *testing.T) {
	fire := NewInputFrame()
	fire.Set(ActionFire)
	none := NewInputFrame()

	tests := []struct {
		name    string
		in      InputFrame
		pressed bool
		trigger bool
	}{
		{"first press", fire, true, true},
		{"held", fire, true, false},
		{"released", none, false, false},
		{"pressed again", fire, true, true},
	}

	p := NewPad()
	for _, tt := range tests {
		p.Update(tt.in)
		if got := p.IsPressed(ActionFire); got != tt.pressed {
			t.Errorf("%s: IsPressed() = %v, expected %v", tt.name, got, tt.pressed)
		}
		if got := p.IsTrigger(ActionFire); got != tt.trigger {
			t.Errorf("%s: IsTrigger() = %v, expected %v", tt.name, got, tt.trigger)
		}
	}

	p.Reset()
	p.Update(fire)
	if !p.IsTrigger(ActionFire) {
		t.Error("IsTrigger() after Reset = false, expected true")
	}
}

func TestActionString(t *testing.T) {
	if got := ActionFire.String(); got != "Fire" {
		t.Errorf("ActionFire.String() = %q, expected Fire", got)
	}
	if got := Action(99).String(); got != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", got)
	}
}
