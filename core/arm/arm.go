// Package arm describes the core registers of ARM Cortex-M targets.
//
// Raw indices follow the DWARF for the ARM Architecture register numbering,
// where R0 through R15 map to 0 through 15.
package arm

import "github.com/wnxd/probedbg/core"

const (
	ARM_REG_R0 = iota
	ARM_REG_R1
	ARM_REG_R2
	ARM_REG_R3
	ARM_REG_R4
	ARM_REG_R5
	ARM_REG_R6
	ARM_REG_R7
	ARM_REG_R8
	ARM_REG_R9
	ARM_REG_R10
	ARM_REG_R11
	ARM_REG_R12
	ARM_REG_R13
	ARM_REG_R14
	ARM_REG_R15

	// Thumb code keeps the frame pointer in R7.
	ARM_REG_FP = ARM_REG_R7
	ARM_REG_SP = ARM_REG_R13
	ARM_REG_LR = ARM_REG_R14
	ARM_REG_PC = ARM_REG_R15
)

var RegisterFile = core.NewRegisterFile(
	core.PlatformRegister{Name: "R0", ID: 0x0, Bits: 32},
	core.PlatformRegister{Name: "R1", ID: 0x1, Bits: 32},
	core.PlatformRegister{Name: "R2", ID: 0x2, Bits: 32},
	core.PlatformRegister{Name: "R3", ID: 0x3, Bits: 32},
	core.PlatformRegister{Name: "R4", ID: 0x4, Bits: 32},
	core.PlatformRegister{Name: "R5", ID: 0x5, Bits: 32},
	core.PlatformRegister{Name: "R6", ID: 0x6, Bits: 32},
	core.PlatformRegister{Name: "R7", ID: 0x7, Bits: 32},
	core.PlatformRegister{Name: "R8", ID: 0x8, Bits: 32},
	core.PlatformRegister{Name: "R9", ID: 0x9, Bits: 32},
	core.PlatformRegister{Name: "R10", ID: 0xa, Bits: 32},
	core.PlatformRegister{Name: "R11", ID: 0xb, Bits: 32},
	core.PlatformRegister{Name: "R12", ID: 0xc, Bits: 32},
	core.PlatformRegister{Name: "SP", ID: 0xd, Bits: 32},
	core.PlatformRegister{Name: "LR", ID: 0xe, Bits: 32},
	core.PlatformRegister{Name: "PC", ID: 0xf, Bits: 32},
)

var _ = core.Register(core.ARCH_ARM, RegisterFile)
