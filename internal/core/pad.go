package core

// Pad turns per-frame held actions into pressed and trigger queries.
// A trigger is the first frame an action is held.
type Pad struct {
	cur  InputFrame
	prev InputFrame
}

// NewPad creates a pad with nothing held.
func NewPad() *Pad {
	return &Pad{cur: NewInputFrame(), prev: NewInputFrame()}
}

// Update latches the input for a new frame.
func (p *Pad) Update(in InputFrame) {
	p.prev, p.cur = p.cur, p.prev
	p.cur.Clear()
	for a, held := range in.Actions {
		if held {
			p.cur.Set(a)
		}
	}
}

// IsPressed reports whether a is held this frame.
func (p *Pad) IsPressed(a Action) bool {
	return p.cur.Has(a)
}

// IsTrigger reports whether a started being held this frame.
func (p *Pad) IsTrigger(a Action) bool {
	return p.cur.Has(a) && !p.prev.Has(a)
}

// Reset releases every action.
func (p *Pad) Reset() {
	p.cur.Clear()
	p.prev.Clear()
}
