// Package coretest provides a scripted in-memory core for tests.
package coretest

import (
	"fmt"

	"github.com/retroenv/retrogolib/set"
	"github.com/wnxd/probedbg/core"
)

// Core answers register reads from a table of values. Reads of numbers
// marked as failing return core.ErrReadFailed and reads of numbers without a
// value return core.ErrRegisterUnavailable. Every read is recorded in Reads.
type Core struct {
	arch    core.Arch
	desc    *core.RegisterFile
	values  map[uint32]uint32
	failing set.Set[uint32]

	Reads []uint32
}

func New(arch core.Arch, desc *core.RegisterFile) *Core {
	return &Core{
		arch:    arch,
		desc:    desc,
		values:  make(map[uint32]uint32),
		failing: set.New[uint32](),
	}
}

// RegisterFile builds a description of n registers named r0 to r<n-1>.
func RegisterFile(n int) *core.RegisterFile {
	regs := make([]core.PlatformRegister, n)
	for i := range regs {
		regs[i] = core.PlatformRegister{Name: fmt.Sprintf("r%d", i), ID: core.RegID(i), Bits: 32}
	}
	return core.NewRegisterFile(regs...)
}

func (c *Core) SetValue(number, value uint32) *Core {
	c.values[number] = value
	return c
}

// Fill gives every register of the description the value fn returns for it.
func (c *Core) Fill(fn func(number uint32) uint32) *Core {
	for i := 0; i < c.desc.Len(); i++ {
		c.values[uint32(i)] = fn(uint32(i))
	}
	return c
}

func (c *Core) Fail(numbers ...uint32) *Core {
	for _, n := range numbers {
		c.failing.Add(n)
	}
	return c
}

func (c *Core) Arch() core.Arch {
	return c.arch
}

func (c *Core) RegisterFile() *core.RegisterFile {
	return c.desc
}

func (c *Core) RegRead(reg core.PlatformRegister) (uint32, error) {
	number, ok := c.desc.ByName(reg.Name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", core.ErrRegisterUnavailable, reg.Name)
	}
	c.Reads = append(c.Reads, number)
	if c.failing.Contains(number) {
		return 0, fmt.Errorf("%w: %s", core.ErrReadFailed, reg.Name)
	}
	value, ok := c.values[number]
	if !ok {
		return 0, fmt.Errorf("%w: %s", core.ErrRegisterUnavailable, reg.Name)
	}
	return value, nil
}
