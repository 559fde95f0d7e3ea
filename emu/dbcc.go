package emu

// The DBcc family replays the 68000 decrement-and-branch loop idiom.
// Each call reports whether the replayed branch is taken, so loops are
// written as
//
//	for ops.Dbra(2) { ... }
//
// with the counter seeded into the data register beforehand. The
// conditional forms inspect their guard flag first: when the guard is
// already in the exit condition the counter is not decremented at all.
// Termination is structural: the counter is a fixed-width word that
// must eventually wrap to the 0xFFFF sentinel.

// Dbra decrements the low word of data register d and returns true
// unless the new value is exactly 0xFFFF. The high word of the
// register is preserved.
func (o *Ops) Dbra(d int) bool {
	w := (o.reg.D[d] - 1) & 0xFFFF
	o.reg.D[d] = o.reg.D[d]&^0xFFFF | w
	return w != 0xFFFF
}

// Dbne returns false without touching the counter when the zero flag
// is clear (the not-equal exit condition). Otherwise it behaves like
// Dbra on data register d.
func (o *Ops) Dbne(d int) bool {
	if !o.reg.Z {
		return false
	}
	return o.Dbra(d)
}

// Dbcs returns false without touching the counter when the carry flag
// is set (the carry-set exit condition). Otherwise it behaves like
// Dbra on data register d.
func (o *Ops) Dbcs(d int) bool {
	if o.reg.C {
		return false
	}
	return o.Dbra(d)
}

// Bgt reports signed greater-than: !Z && N == V.
func (o *Ops) Bgt() bool {
	return !o.reg.Z && o.reg.N == o.reg.V
}

// Blt reports signed less-than: N != V.
func (o *Ops) Blt() bool {
	return o.reg.N != o.reg.V
}

// Beq reports equality: Z.
func (o *Ops) Beq() bool {
	return o.reg.Z
}

// Bra always reports taken.
func (o *Ops) Bra() bool {
	return true
}
