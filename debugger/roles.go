package debugger

import (
	"fmt"

	"github.com/wnxd/probedbg/core"
	"github.com/wnxd/probedbg/core/arm"
	"github.com/wnxd/probedbg/core/riscv"
)

// Role is a register's architecture-independent meaning during unwinding.
type Role int

const (
	ROLE_FRAME_POINTER Role = iota
	ROLE_PROGRAM_COUNTER
	ROLE_STACK_POINTER
	ROLE_RETURN_ADDRESS

	roleCount
)

func (role Role) String() string {
	switch role {
	case ROLE_FRAME_POINTER:
		return "frame pointer"
	case ROLE_PROGRAM_COUNTER:
		return "program counter"
	case ROLE_STACK_POINTER:
		return "stack pointer"
	case ROLE_RETURN_ADDRESS:
		return "return address"
	}
	return fmt.Sprintf("Role(%d)", int(role))
}

// Roles returns every role in declaration order.
func Roles() []Role {
	return []Role{ROLE_FRAME_POINTER, ROLE_PROGRAM_COUNTER, ROLE_STACK_POINTER, ROLE_RETURN_ADDRESS}
}

// RISCV_PC_ALIAS is the DWARF number used for the RISC-V program counter.
// It is ra (x1), so program counter and return address share one entry.
// The PC is a separate register on RISC-V; correct this constant once the
// right number is confirmed against the debug module.
const RISCV_PC_ALIAS = riscv.RISCV_REG_RA

type roleMap [roleCount]uint32

var roleTable = [...]roleMap{
	core.ARCH_ARM: {
		ROLE_FRAME_POINTER:   arm.ARM_REG_FP,
		ROLE_PROGRAM_COUNTER: arm.ARM_REG_PC,
		ROLE_STACK_POINTER:   arm.ARM_REG_SP,
		ROLE_RETURN_ADDRESS:  arm.ARM_REG_LR,
	},
	core.ARCH_RISCV: {
		ROLE_FRAME_POINTER:   riscv.RISCV_REG_FP,
		ROLE_PROGRAM_COUNTER: RISCV_PC_ALIAS,
		ROLE_STACK_POINTER:   riscv.RISCV_REG_SP,
		ROLE_RETURN_ADDRESS:  riscv.RISCV_REG_RA,
	},
}

// Every architecture needs a row.
var _ = [1]struct{}{}[len(roleTable)-core.NUM_ARCH]

func lookupRoles(arch core.Arch) *roleMap {
	if !arch.Valid() || int(arch) >= len(roleTable) {
		return nil
	}
	return &roleTable[arch]
}

// RoleNumber returns the DWARF number holding role on the snapshot's
// architecture.
func (r *Registers) RoleNumber(role Role) (uint32, bool) {
	if r.roles == nil || role < 0 || role >= roleCount {
		return 0, false
	}
	return r.roles[role], true
}

func (r *Registers) RoleValue(role Role) (uint32, bool) {
	number, ok := r.RoleNumber(role)
	if !ok {
		return 0, false
	}
	return r.Value(number)
}

func (r *Registers) SetRole(role Role, value uint32) {
	if number, ok := r.RoleNumber(role); ok {
		r.Set(number, value)
	}
}

func (r *Registers) ClearRole(role Role) {
	if number, ok := r.RoleNumber(role); ok {
		r.Clear(number)
	}
}

// FramePointer returns the canonical frame address register, DWARF 5
// section 6.4.
func (r *Registers) FramePointer() (uint32, bool) {
	return r.RoleValue(ROLE_FRAME_POINTER)
}

func (r *Registers) SetFramePointer(value uint32) {
	r.SetRole(ROLE_FRAME_POINTER, value)
}

func (r *Registers) ClearFramePointer() {
	r.ClearRole(ROLE_FRAME_POINTER)
}

func (r *Registers) ProgramCounter() (uint32, bool) {
	return r.RoleValue(ROLE_PROGRAM_COUNTER)
}

func (r *Registers) SetProgramCounter(value uint32) {
	r.SetRole(ROLE_PROGRAM_COUNTER, value)
}

func (r *Registers) ClearProgramCounter() {
	r.ClearRole(ROLE_PROGRAM_COUNTER)
}

func (r *Registers) StackPointer() (uint32, bool) {
	return r.RoleValue(ROLE_STACK_POINTER)
}

func (r *Registers) SetStackPointer(value uint32) {
	r.SetRole(ROLE_STACK_POINTER, value)
}

func (r *Registers) ClearStackPointer() {
	r.ClearRole(ROLE_STACK_POINTER)
}

func (r *Registers) ReturnAddress() (uint32, bool) {
	return r.RoleValue(ROLE_RETURN_ADDRESS)
}

func (r *Registers) SetReturnAddress(value uint32) {
	r.SetRole(ROLE_RETURN_ADDRESS, value)
}

func (r *Registers) ClearReturnAddress() {
	r.ClearRole(ROLE_RETURN_ADDRESS)
}
