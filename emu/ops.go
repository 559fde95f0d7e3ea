package emu

// Ops implements the 68000 instructions the transcribed routines
// sequence. Each method mirrors one opcode's documented behavior,
// including its flag side effects; instructions that do not affect a
// flag leave it untouched.
//
// Value-shaped instructions take and return 32-bit operands. Word and
// byte forms mask the operand before operating and return the result
// masked to the declared size, except the move family, which merges
// the source into the destination under the size mask (move.w into a
// data register leaves the high word alone on real hardware, and the
// original listings rely on that with the moveq #-1 / move.w idiom).
type Ops struct {
	reg *RegFile
}

// NewOps creates an instruction library bound to the given register file.
func NewOps(reg *RegFile) *Ops {
	return &Ops{reg: reg}
}

// move merges the active bits of src into dst under the size mask.
func (o *Ops) move(dst, src uint32, s Size) uint32 {
	return dst&^s.Mask() | src&s.Mask()
}

// MoveB merges the low byte of src into dst. No flag effects.
func (o *Ops) MoveB(dst, src uint32) uint32 {
	return o.move(dst, src, Byte)
}

// MoveW merges the low word of src into dst. No flag effects.
func (o *Ops) MoveW(dst, src uint32) uint32 {
	return o.move(dst, src, Word)
}

// MoveL replaces dst with src. No flag effects.
func (o *Ops) MoveL(dst, src uint32) uint32 {
	return o.move(dst, src, Long)
}

// ror rotates the active bits of v right by count (mod the size's
// width). Carry takes the last bit rotated out of the low end; a
// rotate amount of 0 returns the masked value and leaves carry alone.
func (o *Ops) ror(v, count uint32, s Size) uint32 {
	w := v & s.Mask()
	k := count & (s.Bits() - 1)
	if k == 0 {
		return w
	}
	o.reg.C = (w>>(k-1))&1 == 1
	return (w>>k | w<<(s.Bits()-k)) & s.Mask()
}

// RorL rotates v right by count bits at long size. The rotate amount
// is taken mod 32. Carry is set to the last bit rotated out of the low
// end; a rotate amount of 0 (mod 32) returns v unchanged and leaves
// carry untouched.
func (o *Ops) RorL(v, count uint32) uint32 {
	return o.ror(v, count, Long)
}

// RorW rotates the low word of v right by count bits (mod 16). Carry
// is set to the last bit rotated out of the low end; a rotate amount
// of 0 (mod 16) returns the word unchanged and leaves carry untouched.
func (o *Ops) RorW(v, count uint32) uint32 {
	return o.ror(v, count, Word)
}

// RolW rotates the low word of v left by count bits (mod 16). Carry is
// set to the last bit rotated out of the high end; a rotate amount of
// 0 (mod 16) returns the word unchanged and leaves carry untouched.
func (o *Ops) RolW(v, count uint32) uint32 {
	w := v & Word.Mask()
	k := count & (Word.Bits() - 1)
	if k == 0 {
		return w
	}
	o.reg.C = (w>>(Word.Bits()-k))&1 == 1
	return (w<<k | w>>(Word.Bits()-k)) & Word.Mask()
}

// lsr logically shifts the active bits of v right, zero-filling from
// the high end. Carry takes the last bit shifted out; a shift of 0
// returns the masked value and leaves carry alone.
func (o *Ops) lsr(v, count uint32, s Size) uint32 {
	w := v & s.Mask()
	k := count & (s.Bits() - 1)
	if k == 0 {
		return w
	}
	o.reg.C = (w>>(k-1))&1 == 1
	return w >> k
}

// LsrB logically shifts the low byte of v right, zero-filling from the
// high end. The shift amount is masked to 7 bits. Carry is set to the
// last bit shifted out; a shift of 0 leaves it untouched.
func (o *Ops) LsrB(v, count uint32) uint32 {
	return o.lsr(v, count, Byte)
}

// LsrW logically shifts the low word of v right, zero-filling. The
// shift amount is masked to 15 bits. Carry is set to the last bit
// shifted out; a shift of 0 leaves it untouched.
func (o *Ops) LsrW(v, count uint32) uint32 {
	return o.lsr(v, count, Word)
}

// LsrL logically shifts v right at long size, zero-filling. The shift
// amount is masked to 31 bits. Carry is set to the last bit shifted
// out; a shift of 0 leaves it untouched.
func (o *Ops) LsrL(v, count uint32) uint32 {
	return o.lsr(v, count, Long)
}

// asr arithmetically shifts the active bits of v right, extending the
// size's sign bit. Carry takes the last bit shifted out; a shift of 0
// returns the masked value and leaves carry alone.
func (o *Ops) asr(v, count uint32, s Size) uint32 {
	w := v & s.Mask()
	k := count & (s.Bits() - 1)
	if k == 0 {
		return w
	}
	o.reg.C = (w>>(k-1))&1 == 1
	r := w >> k
	if w&s.SignBit() != 0 {
		r |= s.Mask() &^ (s.Mask() >> k)
	}
	return r
}

// AsrW arithmetically shifts the low word of v right, extending the
// word's sign bit. The shift amount is masked to 15 bits and the
// result is masked back to word size so no bits leak from unrelated
// positions of the host register. Carry is set to the last bit shifted
// out; a shift of 0 leaves it untouched.
func (o *Ops) AsrW(v, count uint32) uint32 {
	return o.asr(v, count, Word)
}

// AsrL arithmetically shifts v right at long size, extending bit 31.
// The shift amount is masked to 31 bits. Carry is set to the last bit
// shifted out; a shift of 0 leaves it untouched.
func (o *Ops) AsrL(v, count uint32) uint32 {
	return o.asr(v, count, Long)
}

// Swap exchanges the high and low 16-bit halves of v. Pure, no flags.
func (o *Ops) Swap(v uint32) uint32 {
	return v<<16 | v>>16
}

// NegW negates the low word of v (two's complement). The high bits of
// the result are zero. No flag effects.
func (o *Ops) NegW(v uint32) uint32 {
	return (-v) & Word.Mask()
}

// AddqW adds q to v at word size; the result is truncated to 16 bits.
// No flag effects.
func (o *Ops) AddqW(v, q uint32) uint32 {
	return (v + q) & Word.Mask()
}

// SubqW subtracts q from v at word size; the result is truncated to
// 16 bits. No flag effects.
func (o *Ops) SubqW(v, q uint32) uint32 {
	return (v - q) & Word.Mask()
}

// AddaW adds d to v at full 32-bit width with no masking. Address
// arithmetic is never truncated because address registers carry full
// memory offsets. No flag effects.
func (o *Ops) AddaW(v, d uint32) uint32 {
	return v + d
}

// setZN sets the zero and negative flags from the active bits of v.
func (o *Ops) setZN(v uint32, s Size) {
	w := v & s.Mask()
	o.reg.Z = w == 0
	o.reg.N = w&s.SignBit() != 0
}

// AndiW ANDs imm into the low word of v and sets the zero and negative
// flags from the word-sized result.
func (o *Ops) AndiW(v, imm uint32) uint32 {
	w := v & imm & Word.Mask()
	o.setZN(w, Word)
	return w
}

// TstB sets the zero and negative flags from the low byte of v.
// Carry and overflow are left untouched.
func (o *Ops) TstB(v uint32) {
	o.setZN(v, Byte)
}

// TstW sets the zero and negative flags from the low word of v.
// Carry and overflow are left untouched.
func (o *Ops) TstW(v uint32) {
	o.setZN(v, Word)
}

// CmpB computes regv-v at byte size and sets the zero and negative
// flags from the difference. Carry and overflow are left untouched.
func (o *Ops) CmpB(regv, v uint32) {
	o.setZN(regv-v, Byte)
}
