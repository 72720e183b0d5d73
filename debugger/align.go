package debugger

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

func Align[I constraints.Integer](a, b I) I {
	return (a + b - 1) &^ (b - 1)
}

// hexDigits returns how many hex digits a register of the given width needs.
func hexDigits[I constraints.Integer](bits I) I {
	if bits <= 0 {
		return 8
	}
	return Align(bits, 4) / 4
}

// Numbers returns the captured register numbers in ascending order.
func (r *Registers) Numbers() []uint32 {
	return slices.Sorted(maps.Keys(r.values))
}

func (r *Registers) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s registers (%d captured)", r.arch, len(r.values))
	for _, number := range r.Numbers() {
		name, ok := r.Name(number)
		if !ok {
			name = fmt.Sprintf("r%d", number)
		}
		width := 8
		if r.desc != nil {
			if reg, ok := r.desc.GetPlatformRegister(number); ok {
				width = hexDigits(reg.Bits)
			}
		}
		fmt.Fprintf(&sb, "\n%-5s = 0x%0*x", name, width, r.values[number])
	}
	return sb.String()
}
