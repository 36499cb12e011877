// Package sysreg describes AArch64 system register encodings.
//
// A system register is addressed by the five fields op0, op1, CRn, CRm and op2.
// The generic assembler spelling of a register is S<op0>_<op1>_C<n>_C<m>_<op2>,
// which is the canonical identifier used throughout arm64id.
package sysreg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidName is returned by [Parse] for identifiers that are not in
// S<op0>_<op1>_C<n>_C<m>_<op2> form or carry out-of-range fields.
var ErrInvalidName = errors.New("invalid system register name")

// mrsBase is the MRS (register) instruction with op0=2 and every field zero.
const mrsBase uint32 = 0xd5300000

// SysReg identifies one system register by its encoding fields.
type SysReg struct {
	Op0 uint8 // 2 or 3
	Op1 uint8 // 0..7
	CRn uint8 // 0..15
	CRm uint8 // 0..15
	Op2 uint8 // 0..7
}

// String returns the generic identifier, e.g. "S3_0_C0_C0_0".
func (r SysReg) String() string {
	return fmt.Sprintf("S%d_%d_C%d_C%d_%d", r.Op0, r.Op1, r.CRn, r.CRm, r.Op2)
}

// Valid reports whether every field is within its architectural range.
func (r SysReg) Valid() bool {
	return (r.Op0 == 2 || r.Op0 == 3) && r.Op1 <= 7 && r.CRn <= 15 && r.CRm <= 15 && r.Op2 <= 7
}

// MRS returns the A64 instruction word for "mrs x<rt>, <r>".
func (r SysReg) MRS(rt uint8) uint32 {
	return mrsBase |
		uint32(r.Op0-2)<<19 |
		uint32(r.Op1)<<16 |
		uint32(r.CRn)<<12 |
		uint32(r.CRm)<<8 |
		uint32(r.Op2)<<5 |
		uint32(rt&0x1f)
}

// Parse is the inverse of [SysReg.String]. Matching is case-insensitive.
func Parse(name string) (SysReg, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(name)), "_")
	if len(parts) != 5 {
		return SysReg{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	prefixes := [5]string{"S", "", "C", "C", ""}
	limits := [5]uint64{3, 7, 15, 15, 7}
	var fields [5]uint8
	for i, p := range parts {
		if !strings.HasPrefix(p, prefixes[i]) {
			return SysReg{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(p, prefixes[i]), 10, 8)
		if err != nil || n > limits[i] {
			return SysReg{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		fields[i] = uint8(n)
	}

	r := SysReg{Op0: fields[0], Op1: fields[1], CRn: fields[2], CRm: fields[3], Op2: fields[4]}
	if !r.Valid() {
		return SysReg{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return r, nil
}

// Group is a block of eight op0=3 registers sharing op1, CRn and CRm.
type Group struct {
	Op1 uint8
	CRn uint8
	CRm uint8
}

// Registers expands the group in op2 order.
func (g Group) Registers() []SysReg {
	regs := make([]SysReg, 0, 8)
	for op2 := uint8(0); op2 < 8; op2++ {
		regs = append(regs, SysReg{Op0: 3, Op1: g.Op1, CRn: g.CRn, CRm: g.CRm, Op2: op2})
	}
	return regs
}

// Groups lists the register blocks probed by default, in report order:
// the EL1 identification space, the EL0 cache type block and the generic
// timer registers.
var Groups = []Group{
	{Op1: 0, CRn: 0, CRm: 0},
	{Op1: 0, CRn: 0, CRm: 1},
	{Op1: 0, CRn: 0, CRm: 2},
	{Op1: 0, CRn: 0, CRm: 3},
	{Op1: 0, CRn: 0, CRm: 4},
	{Op1: 0, CRn: 0, CRm: 5},
	{Op1: 0, CRn: 0, CRm: 6},
	{Op1: 0, CRn: 0, CRm: 7},

	{Op1: 3, CRn: 0, CRm: 0},
	{Op1: 3, CRn: 14, CRm: 0},
	{Op1: 3, CRn: 14, CRm: 2},
	{Op1: 3, CRn: 14, CRm: 3},
}

// All expands [Groups] in order.
func All() []SysReg {
	regs := make([]SysReg, 0, len(Groups)*8)
	for _, g := range Groups {
		regs = append(regs, g.Registers()...)
	}
	return regs
}

// IsIDSpace reports whether r lies in the op0=3, op1=0, CRn=0 identification
// block, whose EL0 accesses Linux emulates when HWCAP_CPUID is set.
func (r SysReg) IsIDSpace() bool {
	return r.Op0 == 3 && r.Op1 == 0 && r.CRn == 0
}
