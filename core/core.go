package core

// Core is an active hardware session on one target core. Implementations
// are not expected to be safe for concurrent use; callers hold the session
// exclusively while reading registers.
type Core interface {
	Arch() Arch
	RegisterFile() *RegisterFile
	RegRead(reg PlatformRegister) (uint32, error)
}

var fileMap = make(map[Arch]*RegisterFile)

// Register makes rf the default register file of arch. It reports false if
// arch already has one.
func Register(arch Arch, rf *RegisterFile) bool {
	if _, ok := fileMap[arch]; ok {
		return false
	}
	fileMap[arch] = rf
	return true
}

func Lookup(arch Arch) (*RegisterFile, error) {
	if rf, ok := fileMap[arch]; ok {
		return rf, nil
	}
	return nil, ErrArchUnsupported
}
