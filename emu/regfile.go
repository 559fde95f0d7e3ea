// Package emu provides functional emulation of the 68000 instruction
// subset exercised by the transcribed rendering and collision routines.
package emu

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownRegister is returned when a register name resolves to
// neither the data nor the address namespace. It indicates a
// transcription bug and must propagate to the caller.
var ErrUnknownRegister = fmt.Errorf("unknown register")

// RegFile represents the 68000 register file.
// It contains 8 data registers (D0-D7), 8 address registers (A0-A7),
// and the four condition code flags. Registers are 32 bits wide
// regardless of the size an instruction operates at; interpretation
// (signed/unsigned) is chosen per instruction.
type RegFile struct {
	// D holds data registers D0-D7.
	D [8]uint32

	// A holds address registers A0-A7.
	A [8]uint32

	// Condition code flags. Flags are updated only by instructions
	// documented to touch them; everything else leaves them alone.
	Z bool // zero
	N bool // negative
	C bool // carry
	V bool // overflow
}

// NewRegFile creates a zero-initialized register file.
func NewRegFile() *RegFile {
	return &RegFile{}
}

// Get resolves a register by case-insensitive name ("d0".."d7",
// "a0".."a7") and returns its value. An unresolvable name returns
// ErrUnknownRegister wrapped with the offending name.
func (r *RegFile) Get(name string) (uint32, error) {
	bank, n, err := resolveReg(name)
	if err != nil {
		return 0, err
	}
	if bank == 'd' {
		return r.D[n], nil
	}
	return r.A[n], nil
}

// Set resolves a register by case-insensitive name and writes it.
func (r *RegFile) Set(name string, value uint32) error {
	bank, n, err := resolveReg(name)
	if err != nil {
		return err
	}
	if bank == 'd' {
		r.D[n] = value
	} else {
		r.A[n] = value
	}
	return nil
}

func resolveReg(name string) (byte, int, error) {
	s := strings.ToLower(name)
	if len(s) != 2 || (s[0] != 'd' && s[0] != 'a') {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 || n > 7 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
	}
	return s[0], n, nil
}
