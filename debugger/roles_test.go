package debugger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wnxd/probedbg/core"
	"github.com/wnxd/probedbg/core/arm"
	"github.com/wnxd/probedbg/core/riscv"
)

func TestRoleNumbers(t *testing.T) {
	tests := []struct {
		arch core.Arch
		role Role
		want uint32
	}{
		{core.ARCH_ARM, ROLE_FRAME_POINTER, 7},
		{core.ARCH_ARM, ROLE_PROGRAM_COUNTER, 15},
		{core.ARCH_ARM, ROLE_STACK_POINTER, 13},
		{core.ARCH_ARM, ROLE_RETURN_ADDRESS, 14},
		{core.ARCH_RISCV, ROLE_FRAME_POINTER, 8},
		{core.ARCH_RISCV, ROLE_PROGRAM_COUNTER, 1},
		{core.ARCH_RISCV, ROLE_STACK_POINTER, 2},
		{core.ARCH_RISCV, ROLE_RETURN_ADDRESS, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.arch, tt.role), func(t *testing.T) {
			regs := NewRegisters(tt.arch, nil)
			got, ok := regs.RoleNumber(tt.role)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleTableCoversEveryArch(t *testing.T) {
	for _, arch := range core.Archs() {
		regs := NewRegisters(arch, nil)
		for _, role := range Roles() {
			_, ok := regs.RoleNumber(role)
			assert.True(t, ok, "%s has no %s", arch, role)
		}
	}
	// no architecture maps every role to register 0
	for i, row := range roleTable {
		assert.NotEqual(t, roleMap{}, row, "arch #%d", i)
	}
}

func TestRoleRoundTrip(t *testing.T) {
	for _, arch := range core.Archs() {
		for _, role := range Roles() {
			t.Run(fmt.Sprintf("%s %s", arch, role), func(t *testing.T) {
				regs := NewRegisters(arch, nil)

				regs.SetRole(role, 0x20001000)
				got, ok := regs.RoleValue(role)
				require.True(t, ok)
				assert.Equal(t, uint32(0x20001000), got)

				regs.ClearRole(role)
				_, ok = regs.RoleValue(role)
				assert.False(t, ok)
			})
		}
	}
}

func TestNamedRoleAccessors(t *testing.T) {
	regs := NewRegisters(core.ARCH_ARM, arm.RegisterFile)

	regs.SetFramePointer(0x2000_0ff0)
	regs.SetProgramCounter(0x0800_1234)
	regs.SetStackPointer(0x2000_0fe0)
	regs.SetReturnAddress(0x0800_1001)

	v, ok := regs.Value(arm.ARM_REG_R7)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x2000_0ff0), v)
	v, _ = regs.Value(arm.ARM_REG_PC)
	assert.Equal(t, uint32(0x0800_1234), v)
	v, _ = regs.Value(arm.ARM_REG_SP)
	assert.Equal(t, uint32(0x2000_0fe0), v)
	v, _ = regs.Value(arm.ARM_REG_LR)
	assert.Equal(t, uint32(0x0800_1001), v)

	regs.ClearReturnAddress()
	_, ok = regs.ReturnAddress()
	assert.False(t, ok)
	regs.ClearFramePointer()
	_, ok = regs.FramePointer()
	assert.False(t, ok)
	regs.ClearStackPointer()
	_, ok = regs.StackPointer()
	assert.False(t, ok)
	regs.ClearProgramCounter()
	_, ok = regs.ProgramCounter()
	assert.False(t, ok)
	assert.Equal(t, 0, regs.Len())
}

func TestRiscvProgramCounterAliasesReturnAddress(t *testing.T) {
	regs := NewRegisters(core.ARCH_RISCV, riscv.RegisterFile)

	regs.SetProgramCounter(0x4000_0100)
	ra, ok := regs.ReturnAddress()
	require.True(t, ok)
	assert.Equal(t, uint32(0x4000_0100), ra)

	regs.ClearReturnAddress()
	_, ok = regs.ProgramCounter()
	assert.False(t, ok)
}

func TestUnsupportedArchHasNoRoles(t *testing.T) {
	regs := NewRegisters(core.Arch(42), nil)

	_, ok := regs.RoleNumber(ROLE_STACK_POINTER)
	assert.False(t, ok)

	regs.SetStackPointer(1)
	assert.Equal(t, 0, regs.Len())
	_, ok = regs.StackPointer()
	assert.False(t, ok)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "frame pointer", ROLE_FRAME_POINTER.String())
	assert.Equal(t, "return address", ROLE_RETURN_ADDRESS.String())
	assert.Equal(t, "Role(9)", Role(9).String())
}
