// Package prefs holds the target and package preferences a compilation runs
// with. The comptime evaluator answers platform flags from it.
package prefs

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
	"unsafe"
)

const Version = "0.1.0"

// OS is a supported target operating system
type OS int

const (
	OSUnknown OS = iota
	OSLinux
)

// OSFromString maps a target name to an OS, or OSUnknown.
func OSFromString(name string) OS {
	switch strings.ToLower(name) {
	case "linux":
		return OSLinux
	default:
		return OSUnknown
	}
}

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	default:
		return "unknown"
	}
}

// EqualsToString reports whether a comptime flag names this OS.
func (o OS) EqualsToString(flag string) bool {
	return flag == "_LINUX_" && o == OSLinux
}

// Arch is a supported target architecture
type Arch int

const (
	ArchUnknown Arch = iota
	ArchAmd64        // aka x86_64
	ArchI386         // aka x86
)

// ArchFromString maps a target name to an Arch, or ArchUnknown.
func ArchFromString(name string) Arch {
	switch name {
	case "amd64":
		return ArchAmd64
	case "i386":
		return ArchI386
	default:
		return ArchUnknown
	}
}

func (a Arch) String() string {
	switch a {
	case ArchAmd64:
		return "amd64"
	case ArchI386:
		return "i386"
	default:
		return "unknown"
	}
}

// EqualsToString reports whether a comptime flag names this architecture.
func (a Arch) EqualsToString(flag string) bool {
	switch flag {
	case "_AMD64_":
		return a == ArchAmd64
	case "_I386_":
		return a == ArchI386
	}
	return false
}

type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (b ByteOrder) String() string {
	if b == BigEndian {
		return "big"
	}
	return "little"
}

type PkgMode int

const (
	PkgBinary PkgMode = iota
	PkgLibrary
)

// Prefs describes one compilation unit
type Prefs struct {
	PkgName   string
	PkgMode   PkgMode
	OS        OS
	Arch      Arch
	Is64Bit   bool
	ByteOrder ByteOrder
	IsVerbose bool

	// user-defined comptime flags
	flags map[string]bool
}

// Default returns preferences for the host system and a binary package named "main".
func Default() *Prefs {
	arch := ArchI386
	if runtime.GOARCH == "amd64" {
		arch = ArchAmd64
	}
	return &Prefs{
		PkgName:   "main",
		PkgMode:   PkgBinary,
		OS:        OSFromString(runtime.GOOS),
		Arch:      arch,
		Is64Bit:   true,
		ByteOrder: hostByteOrder(),
		flags:     make(map[string]bool),
	}
}

func hostByteOrder() ByteOrder {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return LittleEndian
	}
	return BigEndian
}

// DefineFlag makes a user flag true for comptime conditions.
func (p *Prefs) DefineFlag(name string) {
	if p.flags == nil {
		p.flags = make(map[string]bool)
	}
	p.flags[name] = true
}

// IsDefined answers a comptime flag: builtin platform flags first, then user flags.
func (p *Prefs) IsDefined(flag string) bool {
	switch flag {
	case "_x64_":
		return p.Is64Bit
	case "_x32_":
		return !p.Is64Bit
	case "_LITTLE_ENDIAN_":
		return p.ByteOrder == LittleEndian
	case "_BIG_ENDIAN_":
		return p.ByteOrder == BigEndian
	}
	if p.OS.EqualsToString(flag) || p.Arch.EqualsToString(flag) {
		return true
	}
	return p.flags[flag]
}

// Validate checks the preferences are usable for a compilation.
func (p *Prefs) Validate() error {
	if !isIdentifier(p.PkgName) {
		return fmt.Errorf("invalid package name `%s`", p.PkgName)
	}
	if p.OS == OSUnknown {
		return fmt.Errorf("unknown or unsupported target OS")
	}
	if p.Arch == ArchUnknown {
		return fmt.Errorf("unknown architecture target")
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
