package debugger

import (
	"iter"

	"github.com/wnxd/probedbg/core"
	"golang.org/x/exp/maps"
)

// Registers is a snapshot of a core's registers keyed by DWARF register
// number. A missing entry means the value is unknown, never zero.
//
// A Registers value belongs to a single consumer and is not safe for
// concurrent use.
type Registers struct {
	arch   core.Arch
	desc   *core.RegisterFile
	roles  *roleMap
	values map[uint32]uint32
	absent map[uint32]State
}

// NewRegisters returns an empty snapshot for arch. desc is referenced, not
// copied.
func NewRegisters(arch core.Arch, desc *core.RegisterFile) *Registers {
	return &Registers{
		arch:   arch,
		desc:   desc,
		roles:  lookupRoles(arch),
		values: make(map[uint32]uint32),
		absent: make(map[uint32]State),
	}
}

func (r *Registers) Arch() core.Arch {
	return r.arch
}

func (r *Registers) Description() *core.RegisterFile {
	return r.desc
}

// Len returns the number of registers holding a value.
func (r *Registers) Len() int {
	return len(r.values)
}

func (r *Registers) Value(number uint32) (uint32, bool) {
	v, ok := r.values[number]
	return v, ok
}

func (r *Registers) Set(number, value uint32) {
	r.values[number] = value
	delete(r.absent, number)
}

// Clear marks number as unknown. Clearing an absent register is a no-op
// apart from recording the state.
func (r *Registers) Clear(number uint32) {
	delete(r.values, number)
	r.absent[number] = STATE_CLEARED
}

// Name resolves number through the register description.
func (r *Registers) Name(number uint32) (string, bool) {
	if r.desc == nil {
		return "", false
	}
	reg, ok := r.desc.GetPlatformRegister(number)
	if !ok {
		return "", false
	}
	return reg.Name, true
}

// All yields the captured (number, value) pairs in unspecified order. Each
// iteration reads the snapshot as it is at that moment.
func (r *Registers) All() iter.Seq2[uint32, uint32] {
	return func(yield func(uint32, uint32) bool) {
		for number, value := range r.values {
			if !yield(number, value) {
				return
			}
		}
	}
}

// Clone returns an independent copy sharing the same description.
func (r *Registers) Clone() *Registers {
	return &Registers{
		arch:   r.arch,
		desc:   r.desc,
		roles:  r.roles,
		values: maps.Clone(r.values),
		absent: maps.Clone(r.absent),
	}
}

// Equal reports whether both snapshots hold the same values for the same
// architecture and description. Absence reasons are not compared.
func (r *Registers) Equal(o *Registers) bool {
	return r.arch == o.arch && r.desc == o.desc && maps.Equal(r.values, o.values)
}
