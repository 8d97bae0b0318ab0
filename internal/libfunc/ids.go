// Package libfunc enumerates the C library functions the optimizer knows by
// name, with their C prototypes and per-target availability.
package libfunc

import (
	"fmt"
	"sort"

	"libcall/internal/target"
)

type desc struct {
	symbol string
	proto  string
	avail  avail
}

// avail groups functions by the operating systems whose C library provides
// them.
type avail uint8

const (
	availAny    avail = iota // every target, including offload devices
	availLibc                // every hosted C library
	availPOSIX               // hosted, not windows
	availLinux               // glibc extensions
	availBSD                 // darwin and freebsd
	availDarwin              // darwin only
	availAIX                 // aix only
	availCUDA                // nvptx runtime
)

func (a avail) on(os target.OS) bool {
	switch a {
	case availAny:
		return true
	case availLibc:
		return os != target.OSCUDA
	case availPOSIX:
		return os != target.OSCUDA && os != target.OSWindows
	case availLinux:
		return os == target.OSLinux
	case availBSD:
		return os == target.OSDarwin || os == target.OSFreeBSD
	case availDarwin:
		return os == target.OSDarwin
	case availAIX:
		return os == target.OSAIX
	case availCUDA:
		return os == target.OSCUDA
	}
	return false
}

var bySymbol map[string]ID

func init() {
	bySymbol = make(map[string]ID, NumIDs)
	for id := Invalid + 1; id < idEnd; id++ {
		d := descs[id]
		if d.symbol == "" {
			panic(fmt.Sprintf("libfunc: ID %d has no symbol", id))
		}
		if prev, dup := bySymbol[d.symbol]; dup {
			panic(fmt.Sprintf("libfunc: symbol %q used by %d and %d", d.symbol, prev, id))
		}
		bySymbol[d.symbol] = id
		protos[id] = mustParseProto(d.proto)
	}
}

// Valid reports whether id names a known function.
func (id ID) Valid() bool {
	return id > Invalid && id < idEnd
}

// Symbol returns the canonical C symbol name.
func (id ID) Symbol() string {
	if !id.Valid() {
		return ""
	}
	return descs[id].symbol
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("libfunc.ID(%d)", uint16(id))
	}
	return descs[id].symbol
}

// Proto returns the prototype pattern, e.g. "size(ptr)".
func (id ID) Proto() string {
	if !id.Valid() {
		return ""
	}
	return descs[id].proto
}

// ByName maps a canonical symbol name to its ID.
func ByName(name string) (ID, bool) {
	id, ok := bySymbol[name]
	return id, ok
}

// All returns every valid ID in declaration order.
func All() []ID {
	out := make([]ID, 0, NumIDs)
	for id := Invalid + 1; id < idEnd; id++ {
		out = append(out, id)
	}
	return out
}

// Symbols returns every canonical symbol name, sorted.
func Symbols() []string {
	out := make([]string, 0, NumIDs)
	for name := range bySymbol {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
