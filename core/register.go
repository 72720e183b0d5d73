package core

// RegID is the identifier a probe uses to address a core register.
type RegID uint16

type PlatformRegister struct {
	Name string
	ID   RegID
	Bits int
}

// RegisterFile is the static register catalog of one target. It is built
// once per session and shared by every snapshot taken during it.
type RegisterFile struct {
	platform []PlatformRegister
	byName   map[string]int
}

func NewRegisterFile(regs ...PlatformRegister) *RegisterFile {
	rf := &RegisterFile{
		platform: regs,
		byName:   make(map[string]int, len(regs)),
	}
	for i, reg := range regs {
		rf.byName[reg.Name] = i
	}
	return rf
}

func (rf *RegisterFile) Len() int {
	return len(rf.platform)
}

func (rf *RegisterFile) PlatformRegisters() []PlatformRegister {
	return rf.platform
}

// PlatformRegister panics if i is out of range, like a slice index.
func (rf *RegisterFile) PlatformRegister(i int) PlatformRegister {
	return rf.platform[i]
}

func (rf *RegisterFile) GetPlatformRegister(i uint32) (PlatformRegister, bool) {
	if uint64(i) >= uint64(len(rf.platform)) {
		return PlatformRegister{}, false
	}
	return rf.platform[i], true
}

// ByName returns the platform index of the register called name.
func (rf *RegisterFile) ByName(name string) (uint32, bool) {
	i, ok := rf.byName[name]
	return uint32(i), ok
}
