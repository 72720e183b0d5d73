package riscv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wnxd/probedbg/core"
)

func TestRegisterFile(t *testing.T) {
	assert.Equal(t, 32, RegisterFile.Len())
	assert.Equal(t, "zero", RegisterFile.PlatformRegister(RISCV_REG_ZERO).Name)
	assert.Equal(t, "ra", RegisterFile.PlatformRegister(RISCV_REG_RA).Name)
	assert.Equal(t, "sp", RegisterFile.PlatformRegister(RISCV_REG_SP).Name)
	assert.Equal(t, "s0", RegisterFile.PlatformRegister(RISCV_REG_FP).Name)
	assert.Equal(t, "t6", RegisterFile.PlatformRegister(31).Name)
	assert.Equal(t, core.RegID(0x1001), RegisterFile.PlatformRegister(1).ID)

	rf, err := core.Lookup(core.ARCH_RISCV)
	assert.NoError(t, err)
	assert.Same(t, RegisterFile, rf)
}
