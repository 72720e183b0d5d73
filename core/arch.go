package core

import (
	"fmt"
	"strings"
)

type Arch int

const (
	ARCH_ARM Arch = iota
	ARCH_RISCV

	archCount
)

// NUM_ARCH is the number of supported architectures. Tables indexed by Arch
// compare their length against it at compile time.
const NUM_ARCH = int(archCount)

var archNames = [...]string{
	ARCH_ARM:   "arm",
	ARCH_RISCV: "riscv",
}

var _ = [1]struct{}{}[len(archNames)-int(archCount)]

func ParseArch(s string) (Arch, error) {
	for arch, name := range archNames {
		if strings.EqualFold(s, name) {
			return Arch(arch), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrArchUnsupported, s)
}

func (a Arch) Valid() bool {
	return a >= 0 && a < archCount
}

func (a Arch) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Arch(%d)", int(a))
	}
	return archNames[a]
}

func (a *Arch) UnmarshalText(text []byte) error {
	arch, err := ParseArch(string(text))
	if err != nil {
		return err
	}
	*a = arch
	return nil
}

// Archs returns every supported architecture in declaration order.
func Archs() []Arch {
	archs := make([]Arch, archCount)
	for i := range archs {
		archs[i] = Arch(i)
	}
	return archs
}
