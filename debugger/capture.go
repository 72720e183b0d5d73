package debugger

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/wnxd/probedbg/core"
)

// ReadFailure records a register whose hardware read failed during capture.
type ReadFailure struct {
	Number uint32
	Err    error
}

func (f ReadFailure) Error() string {
	return fmt.Sprintf("register %d: %v", f.Number, f.Err)
}

func (f ReadFailure) Unwrap() error {
	return f.Err
}

// ReadRegisters captures every platform register of c, one read per
// register in ascending order. A failed read is logged and leaves the
// register absent; capture itself always produces a snapshot. The failed
// reads are returned in register order.
func ReadRegisters(c core.Core, logger *log.Logger) (*Registers, []ReadFailure) {
	desc := c.RegisterFile()
	regs := NewRegisters(c.Arch(), desc)
	if regs.roles == nil {
		logger.Warn("No register roles for architecture", log.String("arch", regs.arch.String()))
	}
	if desc == nil {
		return regs, nil
	}

	var failures []ReadFailure
	for i := 0; i < desc.Len(); i++ {
		number := uint32(i)
		value, err := c.RegRead(desc.PlatformRegister(i))
		if err != nil {
			logger.Warn("Failed to read value for register",
				log.Int("register", i),
				log.Err(err))
			regs.absent[number] = STATE_READ_FAILED
			failures = append(failures, ReadFailure{Number: number, Err: err})
			continue
		}
		regs.values[number] = value
	}

	logger.Debug("Registers captured",
		log.String("arch", regs.arch.String()),
		log.Int("read", len(regs.values)),
		log.Int("failed", len(failures)))
	return regs, failures
}

// FailedNumbers returns the register numbers of failures.
func FailedNumbers(failures []ReadFailure) []uint32 {
	numbers := make([]uint32, len(failures))
	for i, f := range failures {
		numbers[i] = f.Number
	}
	return numbers
}
