package emu

import "encoding/binary"

// Memory-mapped bit operations against a caller-supplied byte buffer
// (the monochrome framebuffer). Multi-byte forms read and write in
// big-endian order, matching the 68000's view of screen memory. Every
// access is bounds-checked: an address range falling outside the
// buffer is a silent no-op, where the original trusted raw pointer
// arithmetic. None of these touch the flags.

// BsetB sets bit (v mod 8) of the byte at addr, bit 7 being the
// leftmost pixel.
func (o *Ops) BsetB(buf []byte, addr int, v uint32) {
	if addr < 0 || addr >= len(buf) {
		return
	}
	buf[addr] |= 1 << (v & 7)
}

// EorL XORs v into the 4 bytes at addr.
func (o *Ops) EorL(buf []byte, addr int, v uint32) {
	if addr < 0 || addr+4 > len(buf) {
		return
	}
	w := binary.BigEndian.Uint32(buf[addr:])
	binary.BigEndian.PutUint32(buf[addr:], w^v)
}

// EorW XORs the low word of v into the 2 bytes at addr.
func (o *Ops) EorW(buf []byte, addr int, v uint32) {
	if addr < 0 || addr+2 > len(buf) {
		return
	}
	w := binary.BigEndian.Uint16(buf[addr:])
	binary.BigEndian.PutUint16(buf[addr:], w^uint16(v))
}

// AndL ANDs v into the 4 bytes at addr.
func (o *Ops) AndL(buf []byte, addr int, v uint32) {
	if addr < 0 || addr+4 > len(buf) {
		return
	}
	w := binary.BigEndian.Uint32(buf[addr:])
	binary.BigEndian.PutUint32(buf[addr:], w&v)
}

// AndW ANDs the low word of v into the 2 bytes at addr.
func (o *Ops) AndW(buf []byte, addr int, v uint32) {
	if addr < 0 || addr+2 > len(buf) {
		return
	}
	w := binary.BigEndian.Uint16(buf[addr:])
	binary.BigEndian.PutUint16(buf[addr:], w&uint16(v))
}

// AndB ANDs the low byte of v into the byte at addr.
func (o *Ops) AndB(buf []byte, addr int, v uint32) {
	if addr < 0 || addr >= len(buf) {
		return
	}
	buf[addr] &= byte(v)
}

// OrL ORs v into the 4 bytes at addr.
func (o *Ops) OrL(buf []byte, addr int, v uint32) {
	if addr < 0 || addr+4 > len(buf) {
		return
	}
	w := binary.BigEndian.Uint32(buf[addr:])
	binary.BigEndian.PutUint32(buf[addr:], w|v)
}

// OrW ORs the low word of v into the 2 bytes at addr.
func (o *Ops) OrW(buf []byte, addr int, v uint32) {
	if addr < 0 || addr+2 > len(buf) {
		return
	}
	w := binary.BigEndian.Uint16(buf[addr:])
	binary.BigEndian.PutUint16(buf[addr:], w|uint16(v))
}

// OrB ORs the low byte of v into the byte at addr.
func (o *Ops) OrB(buf []byte, addr int, v uint32) {
	if addr < 0 || addr >= len(buf) {
		return
	}
	buf[addr] |= byte(v)
}
