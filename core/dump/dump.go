// Package dump implements an offline core whose register reads are served
// from a YAML register dump. Dumps ending in .zst are zstd compressed.
//
//	arch: riscv
//	registers:
//	  1: 0x20000100
//	  2: 0x20003ff0
//	fail: [5]
package dump

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/retroenv/retrogolib/set"
	"github.com/wnxd/probedbg/core"
	_ "github.com/wnxd/probedbg/core/arm"
	_ "github.com/wnxd/probedbg/core/riscv"
	"gopkg.in/yaml.v3"
)

var ErrMissingArch = errors.New("dump has no architecture")

type file struct {
	Arch      *core.Arch        `yaml:"arch"`
	Registers map[uint32]uint32 `yaml:"registers"`
	Fail      []uint32          `yaml:"fail"`
}

// Session is a core.Core backed by a register dump.
type Session struct {
	arch   core.Arch
	desc   *core.RegisterFile
	values map[uint32]uint32
	fail   set.Set[uint32]
}

var _ core.Core = (*Session)(nil)

func Open(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump '%s': %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	return Load(r)
}

func Load(r io.Reader) (*Session, error) {
	var d file
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding dump: %w", err)
	}
	if d.Arch == nil {
		return nil, ErrMissingArch
	}
	desc, err := core.Lookup(*d.Arch)
	if err != nil {
		return nil, fmt.Errorf("register file for %s: %w", *d.Arch, err)
	}

	s := &Session{
		arch:   *d.Arch,
		desc:   desc,
		values: d.Registers,
		fail:   set.New[uint32](),
	}
	if s.values == nil {
		s.values = make(map[uint32]uint32)
	}
	for number := range s.values {
		if _, ok := desc.GetPlatformRegister(number); !ok {
			return nil, fmt.Errorf("register %d: %w", number, core.ErrRegisterUnavailable)
		}
	}
	for _, number := range d.Fail {
		if _, ok := desc.GetPlatformRegister(number); !ok {
			return nil, fmt.Errorf("failing register %d: %w", number, core.ErrRegisterUnavailable)
		}
		s.fail.Add(number)
	}
	return s, nil
}

func (s *Session) Arch() core.Arch {
	return s.arch
}

func (s *Session) RegisterFile() *core.RegisterFile {
	return s.desc
}

func (s *Session) RegRead(reg core.PlatformRegister) (uint32, error) {
	number, ok := s.desc.ByName(reg.Name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", core.ErrRegisterUnavailable, reg.Name)
	}
	if s.fail.Contains(number) {
		return 0, fmt.Errorf("%w: %s", core.ErrReadFailed, reg.Name)
	}
	value, ok := s.values[number]
	if !ok {
		return 0, fmt.Errorf("%w: %s", core.ErrRegisterUnavailable, reg.Name)
	}
	return value, nil
}
