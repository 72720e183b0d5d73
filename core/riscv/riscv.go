// Package riscv describes the integer registers of RV32 targets.
package riscv

import "github.com/wnxd/probedbg/core"

// DWARF numbers of the registers with a calling-convention role. x0 through
// x31 map to 0 through 31.
const (
	RISCV_REG_ZERO = 0
	RISCV_REG_RA   = 1
	RISCV_REG_SP   = 2
	RISCV_REG_FP   = 8 // s0
)

// Debug-module register numbers start at 0x1000 for the GPRs.
const gprBase = 0x1000

var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

var RegisterFile = newRegisterFile()

func newRegisterFile() *core.RegisterFile {
	regs := make([]core.PlatformRegister, len(abiNames))
	for i, name := range abiNames {
		regs[i] = core.PlatformRegister{Name: name, ID: core.RegID(gprBase + i), Bits: 32}
	}
	return core.NewRegisterFile(regs...)
}

var _ = core.Register(core.ARCH_RISCV, RegisterFile)
