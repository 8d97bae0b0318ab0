// Package target describes the ABI-relevant facts of a compilation target:
// integer widths, the long double format, the operating system family that
// decides which C library functions exist, and how narrow integer
// arguments are extended at call boundaries.
package target

import (
	"fmt"

	"libcall/internal/ir"
)

// OS is the operating-system family of a target.
type OS string

const (
	OSLinux   OS = "linux"
	OSDarwin  OS = "darwin"
	OSWindows OS = "windows"
	OSFreeBSD OS = "freebsd"
	OSAIX     OS = "aix"
	OSCUDA    OS = "cuda"
)

func (o OS) valid() bool {
	switch o {
	case OSLinux, OSDarwin, OSWindows, OSFreeBSD, OSAIX, OSCUDA:
		return true
	}
	return false
}

// Profile describes one target.
type Profile struct {
	Name   string
	Triple string
	OS     OS

	WordBits    int // native register width
	PointerBits int
	LongBits    int // C long
	SizeBits    int // size_t
	LongDouble  ir.FloatKind

	// ExtI32Param: narrow integer arguments are sign- or zero-extended
	// according to their signedness.
	ExtI32Param bool
	// SignExtI32Param: narrow integer arguments are always sign-extended.
	SignExtI32Param bool

	RtLibUseGOT bool

	// Enable and Disable override the OS-family availability of individual
	// library functions, by symbol name.
	Enable  []string
	Disable []string
}

// DataLayout returns the IR data layout for the profile.
func (p Profile) DataLayout() ir.DataLayout {
	return ir.DataLayout{PointerBits: p.PointerBits}
}

// NewModule creates an empty IR module configured for the profile.
func (p Profile) NewModule(name string) *ir.Module {
	m := ir.NewModule(name, p.DataLayout())
	m.RtLibUseGOT = p.RtLibUseGOT
	return m
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (%s, %d-bit)", p.Name, p.Triple, p.WordBits)
}

// X86_64LinuxGNU returns the default host profile.
func X86_64LinuxGNU() Profile {
	p, err := Builtin("x86_64-linux-gnu")
	if err != nil {
		panic(err)
	}
	return p
}
