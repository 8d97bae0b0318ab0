package libcall

import (
	"fmt"

	"libcall/internal/ir"
	"libcall/internal/libfunc"
)

// AccessClass is a function-level memory effect. ReadOnly and
// NoReadsMayWrite are effects, the other classes restrict which memory the
// effect may touch, so a rule may list one of each.
type AccessClass uint8

const (
	AccessNone                 AccessClass = iota + 1 // readnone
	AccessReadOnly                                    // readonly
	AccessNoReadsMayWrite                             // writeonly: reads nothing, may set errno
	AccessArgMemOnly                                  // argmemonly
	AccessInaccessibleMemOnly                         // inaccessiblememonly
	AccessInaccessibleOrArgMem                        // inaccessiblemem_or_argmemonly
)

func (a AccessClass) attr() ir.AttrKind {
	switch a {
	case AccessNone:
		return ir.AttrReadNone
	case AccessReadOnly:
		return ir.AttrReadOnly
	case AccessNoReadsMayWrite:
		return ir.AttrWriteOnly
	case AccessArgMemOnly:
		return ir.AttrArgMemOnly
	case AccessInaccessibleMemOnly:
		return ir.AttrInaccessibleMemOnly
	case AccessInaccessibleOrArgMem:
		return ir.AttrInaccessibleMemOrArgMemOnly
	}
	return ir.AttrNone
}

func (a AccessClass) String() string {
	if k := a.attr(); k != ir.AttrNone {
		return k.String()
	}
	return fmt.Sprintf("AccessClass(%d)", a)
}

// FnFacts is a set of function-level facts.
type FnFacts uint8

const (
	NoThrow FnFacts = 1 << iota
	WillReturn
	NoFree
	RetNoAlias
	RetNoUndef
	ArgsNoUndef

	// RetAndArgsNoUndef marks the return value and every argument noundef.
	RetAndArgsNoUndef = RetNoUndef | ArgsNoUndef
)

var fnFactNames = []struct {
	f    FnFacts
	name string
}{
	{NoThrow, "nounwind"},
	{WillReturn, "willreturn"},
	{NoFree, "nofree"},
	{RetNoAlias, "ret:noalias"},
	{RetNoUndef, "ret:noundef"},
	{ArgsNoUndef, "args:noundef"},
}

// Strings lists the facts in a fixed order.
func (f FnFacts) Strings() []string {
	var out []string
	for _, n := range fnFactNames {
		if f&n.f != 0 {
			out = append(out, n.name)
		}
	}
	return out
}

// ParamFacts is a set of facts about one argument.
type ParamFacts uint8

const (
	NoCapture ParamFacts = 1 << iota
	NoAlias
	ArgReadOnly
	ArgWriteOnly
	ArgNoUndef
	Returned
	AllocAlign
	AllocatedPointer
)

var paramFactAttrs = []struct {
	f    ParamFacts
	kind ir.AttrKind
}{
	{NoCapture, ir.AttrNoCapture},
	{NoAlias, ir.AttrNoAlias},
	{ArgReadOnly, ir.AttrReadOnly},
	{ArgWriteOnly, ir.AttrWriteOnly},
	{ArgNoUndef, ir.AttrNoUndef},
	{Returned, ir.AttrReturned},
	{AllocAlign, ir.AttrAllocAlign},
	{AllocatedPointer, ir.AttrAllocatedPointer},
}

// Strings lists the facts using IR attribute spelling.
func (f ParamFacts) Strings() []string {
	var out []string
	for _, a := range paramFactAttrs {
		if f&a.f != 0 {
			out = append(out, a.kind.String())
		}
	}
	return out
}

// ParamRule attaches facts to argument Arg.
type ParamRule struct {
	Arg   int
	Facts ParamFacts
}

// Family groups identifiers that share a contract. It is informational.
type Family string

const (
	FamilyStringInspect     Family = "string-inspect"
	FamilyStringCopy        Family = "string-copy"
	FamilyStringConvert     Family = "string-convert"
	FamilyStringAlloc       Family = "string-alloc"
	FamilyLocaleCompare     Family = "locale-compare"
	FamilyRawMemory         Family = "raw-memory"
	FamilyAllocator         Family = "allocator"
	FamilyReallocator       Family = "reallocator"
	FamilyDeallocator       Family = "deallocator"
	FamilyCancellationPoint Family = "cancellation-point"
	FamilyCallback          Family = "callback"
	FamilyNumeric           Family = "numeric"
	FamilyFormatted         Family = "formatted-io"
	FamilyStdio             Family = "stdio"
	FamilyFilesystem        Family = "filesystem"
	FamilySystem            Family = "system"
	FamilyByteOrder         Family = "byte-order"
	FamilyUnannotated       Family = "unannotated"
)

// Rule is the declarative set of facts for one identifier.
type Rule struct {
	Family      Family
	Access      []AccessClass // applied in order
	Fn          FnFacts
	Params      []ParamRule
	AllocSize   *ir.AllocSizeArgs
	AllocFamily string
	// FreeLike functions may release memory, so the default nofree is
	// withheld.
	FreeLike bool
}

// With returns r extended by overlay. Access classes, function facts and
// parameter facts accumulate; a non-empty Family, AllocSize or AllocFamily
// in the overlay replaces the base value.
func (r Rule) With(overlay Rule) Rule {
	out := r
	if overlay.Family != "" {
		out.Family = overlay.Family
	}
	out.Access = append(append([]AccessClass(nil), r.Access...), overlay.Access...)
	out.Fn |= overlay.Fn
	out.Params = mergeParams(r.Params, overlay.Params)
	if overlay.AllocSize != nil {
		out.AllocSize = overlay.AllocSize
	}
	if overlay.AllocFamily != "" {
		out.AllocFamily = overlay.AllocFamily
	}
	out.FreeLike = r.FreeLike || overlay.FreeLike
	return out
}

func mergeParams(a, b []ParamRule) []ParamRule {
	out := append([]ParamRule(nil), a...)
	for _, p := range b {
		merged := false
		for i := range out {
			if out[i].Arg == p.Arg {
				out[i].Facts |= p.Facts
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, p)
		}
	}
	return out
}

// ParamFacts returns the facts the rule attaches to argument i.
func (r Rule) ParamFacts(i int) ParamFacts {
	var f ParamFacts
	for _, p := range r.Params {
		if p.Arg == i {
			f |= p.Facts
		}
	}
	return f
}

// Has reports whether the rule carries every fact in f.
func (r Rule) Has(f FnFacts) bool { return r.Fn&f == f }

func arg(i int, f ParamFacts) ParamRule { return ParamRule{Arg: i, Facts: f} }

func access(classes ...AccessClass) []AccessClass { return classes }

func allocSize(elem int) *ir.AllocSizeArgs { return &ir.AllocSizeArgs{Elem: elem} }

func allocSizeN(elem, num int) *ir.AllocSizeArgs {
	return &ir.AllocSizeArgs{Elem: elem, Num: num, HasNum: true}
}

// Shared contracts. Per-identifier rules below compose these.
var (
	strInspect = Rule{
		Family: FamilyStringInspect,
		Access: access(AccessReadOnly, AccessArgMemOnly),
		Fn:     NoThrow | WillReturn,
	}
	strCompare = strInspect.With(Rule{
		Params: []ParamRule{arg(0, NoCapture), arg(1, NoCapture)},
	})
	localeCompare = Rule{
		Family: FamilyLocaleCompare,
		Access: access(AccessReadOnly),
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, NoCapture), arg(1, NoCapture)},
	}
	strToNum = Rule{
		Family: FamilyStringConvert,
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, ArgReadOnly), arg(1, NoCapture)},
	}
	strCopy = Rule{
		Family: FamilyStringCopy,
		Access: access(AccessArgMemOnly),
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, ArgWriteOnly|NoAlias), arg(1, NoCapture|ArgReadOnly|NoAlias)},
	}
	strConcat = Rule{
		Family: FamilyStringCopy,
		Access: access(AccessArgMemOnly),
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, Returned|NoAlias), arg(1, NoCapture|ArgReadOnly|NoAlias)},
	}
	strTok = Rule{
		Family: FamilyStringInspect,
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(1, NoCapture|ArgReadOnly)},
	}
	gnuStrDup = Rule{
		Family: FamilyStringAlloc,
		Fn:     NoThrow | RetNoAlias | WillReturn,
		Params: []ParamRule{arg(0, NoCapture|ArgReadOnly)},
	}
	strDup = gnuStrDup.With(Rule{
		Access:      access(AccessInaccessibleOrArgMem),
		AllocFamily: "malloc",
	})

	memCopyChk = Rule{
		Family: FamilyRawMemory,
		Access: access(AccessArgMemOnly),
		Fn:     NoThrow,
		Params: []ParamRule{arg(0, NoAlias|ArgWriteOnly), arg(1, NoAlias|NoCapture|ArgReadOnly)},
	}
	memSetChk = Rule{
		Family: FamilyRawMemory,
		Access: access(AccessArgMemOnly),
		Fn:     NoThrow,
		Params: []ParamRule{arg(0, ArgWriteOnly)},
	}
	memSet        = memSetChk.With(Rule{Fn: WillReturn})
	memSetPattern = memSet.With(Rule{
		Params: []ParamRule{arg(0, NoCapture), arg(1, NoCapture|ArgReadOnly)},
	})

	mallocLike = Rule{
		Family:      FamilyAllocator,
		Access:      access(AccessInaccessibleMemOnly),
		Fn:          RetAndArgsNoUndef | NoThrow | RetNoAlias | WillReturn,
		AllocSize:   allocSize(0),
		AllocFamily: "malloc",
	}
	callocLike = mallocLike.With(Rule{AllocSize: allocSizeN(0, 1)})
	reallocLike = Rule{
		Family:      FamilyReallocator,
		Access:      access(AccessInaccessibleOrArgMem),
		Fn:          RetNoUndef | NoThrow | RetNoAlias | WillReturn,
		Params:      []ParamRule{arg(0, AllocatedPointer|NoCapture), arg(1, ArgNoUndef)},
		AllocSize:   allocSize(1),
		AllocFamily: "malloc",
		FreeLike:    true,
	}
	freeLike = Rule{
		Family:      FamilyDeallocator,
		Access:      access(AccessInaccessibleOrArgMem),
		Fn:          ArgsNoUndef | NoThrow | WillReturn,
		Params:      []ParamRule{arg(0, AllocatedPointer|NoCapture)},
		AllocFamily: "malloc",
		FreeLike:    true,
	}

	numeric = Rule{
		Family: FamilyNumeric,
		Access: access(AccessNoReadsMayWrite),
		Fn:     NoThrow | NoFree | WillReturn,
	}
	outParam = Rule{
		Family: FamilyNumeric,
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(1, NoCapture)},
	}

	// Blocking calls that are pthread cancellation points, or that call back
	// into user code, may unwind and may not return.
	cancellationPoint = Rule{Family: FamilyCancellationPoint, Fn: RetAndArgsNoUndef}

	stdio = Rule{Family: FamilyStdio, Fn: RetAndArgsNoUndef | NoThrow}
	// stream or descriptor in argument 0
	stdioStream0 = stdio.With(Rule{Params: []ParamRule{arg(0, NoCapture)}})
	// stream or buffer in argument 1
	stdioStream1 = stdio.With(Rule{Params: []ParamRule{arg(1, NoCapture)}})
	// path or read-only string in argument 0
	pathArg0 = stdio.With(Rule{Family: FamilyFilesystem, Params: []ParamRule{arg(0, NoCapture|ArgReadOnly)}})
	// read-only strings in arguments 0 and 1
	pathArgs01 = pathArg0.With(Rule{Params: []ParamRule{arg(1, NoCapture|ArgReadOnly)}})
	statLike   = pathArg0.With(Rule{Params: []ParamRule{arg(1, NoCapture)}})

	formatted = Rule{Family: FamilyFormatted, Fn: RetAndArgsNoUndef | NoThrow}
	// format string in argument 0
	fmtArg0 = formatted.With(Rule{Params: []ParamRule{arg(0, NoCapture|ArgReadOnly)}})
	// stream in argument 0, format in argument 1
	fmtStream = formatted.With(Rule{Params: []ParamRule{arg(0, NoCapture), arg(1, NoCapture|ArgReadOnly)}})
	// source string and format both read-only
	fmtScanString = formatted.With(Rule{Params: []ParamRule{arg(0, NoCapture|ArgReadOnly), arg(1, NoCapture|ArgReadOnly)}})
)

var (
	rules       = make(map[libfunc.ID]Rule, libfunc.NumIDs)
	unannotated = map[libfunc.ID]bool{
		libfunc.Strlcat: true,
		libfunc.Strlcpy: true,
	}
)

func def(r Rule, ids ...libfunc.ID) {
	for _, id := range ids {
		if _, dup := rules[id]; dup {
			panic(fmt.Sprintf("libcall: duplicate rule for %s", id))
		}
		rules[id] = r
	}
}

func init() {
	// Strings.
	def(strInspect.With(Rule{Fn: RetNoUndef, Params: []ParamRule{arg(0, NoCapture)}}),
		libfunc.Strlen, libfunc.Strnlen, libfunc.Wcslen)
	def(strInspect, libfunc.Strchr, libfunc.Strrchr)
	def(strCompare, libfunc.Strcmp, libfunc.Strncmp, libfunc.Strspn, libfunc.Strcspn)
	def(strInspect.With(Rule{Params: []ParamRule{arg(1, NoCapture)}}),
		libfunc.Strstr, libfunc.Strpbrk)
	def(localeCompare, libfunc.Strcoll, libfunc.Strcasecmp, libfunc.Strncasecmp)
	def(strToNum, libfunc.Strtol, libfunc.Strtod, libfunc.Strtof, libfunc.Strtoul,
		libfunc.Strtoll, libfunc.Strtold, libfunc.Strtoull)
	def(Rule{
		Family: FamilyStringConvert,
		Access: access(AccessReadOnly),
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, NoCapture)},
	}, libfunc.Atoi, libfunc.Atol, libfunc.Atof, libfunc.Atoll)
	def(strConcat, libfunc.Strcat, libfunc.Strncat)
	def(strCopy.With(Rule{Params: []ParamRule{arg(0, Returned)}}), libfunc.Strcpy, libfunc.Strncpy)
	def(strCopy, libfunc.Stpcpy, libfunc.Stpncpy)
	def(Rule{
		Family: FamilyStringCopy,
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, NoCapture), arg(1, NoCapture|ArgReadOnly)},
	}, libfunc.Strxfrm)
	def(strTok, libfunc.Strtok, libfunc.StrtokR)
	def(Rule{
		Family: FamilyStringInspect,
		Fn:     NoThrow,
		Params: []ParamRule{arg(1, NoCapture|ArgReadOnly)},
	}, libfunc.DunderStrtokR)
	def(strDup, libfunc.Strdup)
	def(strDup.With(Rule{Params: []ParamRule{arg(1, ArgNoUndef)}}), libfunc.Strndup)
	def(gnuStrDup, libfunc.DunderStrdup)
	def(gnuStrDup.With(Rule{Params: []ParamRule{arg(1, ArgNoUndef)}}), libfunc.DunderStrndup)

	// Raw memory.
	def(strCompare.With(Rule{Family: FamilyRawMemory}), libfunc.Memcmp, libfunc.Bcmp)
	def(strInspect.With(Rule{Family: FamilyRawMemory}), libfunc.Memchr, libfunc.Memrchr)
	def(Rule{
		Family: FamilyRawMemory,
		Access: access(AccessArgMemOnly),
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, NoAlias|Returned|ArgWriteOnly), arg(1, NoAlias|NoCapture|ArgReadOnly)},
	}, libfunc.Memcpy)
	def(Rule{
		Family: FamilyRawMemory,
		Access: access(AccessArgMemOnly),
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, Returned|ArgWriteOnly), arg(1, NoCapture|ArgReadOnly)},
	}, libfunc.Memmove)
	def(memCopyChk, libfunc.MemcpyChk)
	def(memCopyChk.With(Rule{Fn: WillReturn}), libfunc.Mempcpy, libfunc.Memccpy)
	def(Rule{
		Family: FamilyRawMemory,
		Access: access(AccessArgMemOnly),
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, NoCapture|ArgReadOnly), arg(1, ArgWriteOnly|NoCapture)},
	}, libfunc.Bcopy)
	def(Rule{
		Family: FamilyRawMemory,
		Access: access(AccessArgMemOnly),
		Fn:     NoThrow | WillReturn,
		Params: []ParamRule{arg(0, NoCapture|ArgWriteOnly)},
	}, libfunc.Bzero)
	def(memSetChk, libfunc.MemsetChk)
	def(memSet, libfunc.Memset)
	def(memSetPattern, libfunc.MemsetPattern4, libfunc.MemsetPattern8, libfunc.MemsetPattern16)

	// Allocation. Each allocator, reallocator and deallocator of one
	// discipline shares an alloc-family tag.
	def(mallocLike, libfunc.Malloc, libfunc.Valloc)
	def(mallocLike.With(Rule{AllocFamily: "vec_malloc"}), libfunc.VecMalloc)
	def(mallocLike.With(Rule{
		AllocSize: allocSize(1),
		Params:    []ParamRule{arg(0, AllocAlign)},
	}), libfunc.AlignedAlloc)
	def(Rule{
		Family:      FamilyAllocator,
		Access:      access(AccessInaccessibleMemOnly),
		Fn:          RetNoUndef | NoThrow | RetNoAlias | WillReturn,
		Params:      []ParamRule{arg(0, AllocAlign)},
		AllocSize:   allocSize(1),
		AllocFamily: "malloc",
	}, libfunc.Memalign)
	def(callocLike, libfunc.Calloc)
	def(callocLike.With(Rule{AllocFamily: "vec_malloc"}), libfunc.VecCalloc)
	def(reallocLike, libfunc.Realloc, libfunc.Reallocf)
	def(reallocLike.With(Rule{AllocFamily: "vec_malloc"}), libfunc.VecRealloc)
	def(freeLike, libfunc.Free)
	def(freeLike.With(Rule{AllocFamily: "vec_malloc"}), libfunc.VecFree)

	// Cancellation points and callbacks: no nounwind, no willreturn.
	def(cancellationPoint.With(Rule{Params: []ParamRule{arg(1, NoCapture)}}),
		libfunc.Read, libfunc.Pread)
	def(cancellationPoint.With(Rule{Params: []ParamRule{arg(1, NoCapture|ArgReadOnly)}}),
		libfunc.Write, libfunc.Pwrite)
	def(cancellationPoint.With(Rule{Params: []ParamRule{arg(0, NoCapture|ArgReadOnly)}}),
		libfunc.Open, libfunc.Open64, libfunc.System)
	def(cancellationPoint.With(Rule{Family: FamilyCallback, Params: []ParamRule{arg(3, NoCapture)}}),
		libfunc.Qsort)

	// Formatted I/O.
	def(fmtArg0, libfunc.Scanf, libfunc.DunderIsoc99Scanf, libfunc.Vscanf,
		libfunc.Printf, libfunc.Vprintf, libfunc.Puts, libfunc.Perror)
	def(fmtScanString, libfunc.Sscanf, libfunc.DunderIsoc99Sscanf, libfunc.Vsscanf)
	def(fmtStream, libfunc.Fscanf, libfunc.Fprintf, libfunc.Vfscanf, libfunc.Vfprintf, libfunc.Vsprintf)
	def(formatted.With(Rule{
		Params: []ParamRule{arg(0, NoCapture|NoAlias|ArgWriteOnly), arg(1, NoCapture|ArgReadOnly)},
	}), libfunc.Sprintf)
	def(formatted.With(Rule{
		Params: []ParamRule{arg(0, NoCapture|NoAlias|ArgWriteOnly), arg(2, NoCapture|ArgReadOnly)},
	}), libfunc.Snprintf)
	def(formatted.With(Rule{
		Params: []ParamRule{arg(0, NoCapture), arg(2, NoCapture|ArgReadOnly)},
	}), libfunc.Vsnprintf)

	// Streams.
	def(stdioStream0, libfunc.Fseek, libfunc.Ftell, libfunc.Fgetc, libfunc.FgetcUnlocked,
		libfunc.Fseeko, libfunc.Ftello, libfunc.Fileno, libfunc.Fflush, libfunc.Fclose,
		libfunc.Fsetpos, libfunc.Flockfile, libfunc.Funlockfile, libfunc.Ftrylockfile,
		libfunc.Feof, libfunc.Clearerr, libfunc.Rewind, libfunc.Getc, libfunc.GetcUnlocked,
		libfunc.UnderIOGetc, libfunc.Fseeko64, libfunc.Ftello64, libfunc.Pclose,
		libfunc.Setbuf, libfunc.Setvbuf)
	def(stdioStream0.With(Rule{Access: access(AccessReadOnly)}), libfunc.Ferror)
	def(stdioStream1, libfunc.Fputc, libfunc.FputcUnlocked, libfunc.Putc, libfunc.PutcUnlocked,
		libfunc.UnderIOPutc, libfunc.Ungetc)
	def(stdio.With(Rule{Params: []ParamRule{arg(2, NoCapture)}}), libfunc.Fgets, libfunc.FgetsUnlocked)
	def(stdio.With(Rule{Params: []ParamRule{arg(0, NoCapture), arg(3, NoCapture)}}),
		libfunc.Fread, libfunc.FreadUnlocked, libfunc.Fwrite, libfunc.FwriteUnlocked)
	def(stdio.With(Rule{Params: []ParamRule{arg(0, NoCapture|ArgReadOnly), arg(1, NoCapture)}}),
		libfunc.Fputs, libfunc.FputsUnlocked)
	def(stdio.With(Rule{Params: []ParamRule{arg(0, NoCapture), arg(1, NoCapture)}}), libfunc.Fgetpos)
	def(stdio, libfunc.Gets, libfunc.Getchar, libfunc.GetcharUnlocked,
		libfunc.Putchar, libfunc.PutcharUnlocked)
	def(stdio.With(Rule{Fn: RetNoAlias}), libfunc.Tmpfile, libfunc.Tmpfile64)
	def(pathArgs01.With(Rule{Fn: RetNoAlias}), libfunc.Fopen, libfunc.Fopen64, libfunc.Popen)
	def(stdio.With(Rule{Fn: RetNoAlias, Params: []ParamRule{arg(1, NoCapture|ArgReadOnly)}}), libfunc.Fdopen)

	// Filesystem and descriptors.
	def(pathArg0, libfunc.Access, libfunc.Chmod, libfunc.Chown, libfunc.Lchown, libfunc.Mkdir,
		libfunc.Rmdir, libfunc.Remove, libfunc.Realpath, libfunc.Unlink, libfunc.Unsetenv,
		libfunc.Getpwnam)
	def(pathArg0.With(Rule{Fn: RetNoAlias}), libfunc.Opendir)
	def(pathArgs01, libfunc.Rename, libfunc.Utime, libfunc.Utimes)
	def(statLike, libfunc.Stat, libfunc.Statvfs, libfunc.Lstat, libfunc.Stat64, libfunc.Lstat64,
		libfunc.Statvfs64, libfunc.Readlink)
	def(stdioStream1.With(Rule{Family: FamilyFilesystem}), libfunc.Fstat, libfunc.Fstatvfs,
		libfunc.Fstat64, libfunc.Fstatvfs64)
	def(stdioStream0.With(Rule{Family: FamilyFilesystem}), libfunc.Closedir)

	// Process and environment.
	def(stdioStream0.With(Rule{Family: FamilySystem}), libfunc.Ctermid, libfunc.GetloginR,
		libfunc.Uname, libfunc.Times)
	def(stdioStream1.With(Rule{Family: FamilySystem}), libfunc.Getitimer)
	def(stdio.With(Rule{Family: FamilySystem, Access: access(AccessReadOnly), Params: []ParamRule{arg(0, NoCapture)}}),
		libfunc.Getenv)
	def(stdio.With(Rule{
		Family: FamilySystem,
		Fn:     WillReturn,
		Params: []ParamRule{arg(1, NoCapture|ArgReadOnly), arg(2, NoCapture)},
	}), libfunc.Setitimer)
	def(stdio.With(Rule{Family: FamilySystem, Params: []ParamRule{arg(0, NoCapture), arg(1, NoCapture)}}),
		libfunc.Gettimeofday)
	def(stdioStream0.With(Rule{Family: FamilySystem, Fn: WillReturn}), libfunc.Mktime)
	def(Rule{
		Family: FamilySystem,
		Access: access(AccessNone),
		Fn:     RetAndArgsNoUndef | NoThrow,
	}, libfunc.NvvmReflect)

	// Byte order.
	def(Rule{Family: FamilyByteOrder, Access: access(AccessNone), Fn: NoThrow},
		libfunc.Htonl, libfunc.Htons, libfunc.Ntohl, libfunc.Ntohs)

	// Numeric.
	def(outParam, libfunc.Modf, libfunc.Modff, libfunc.Modfl, libfunc.Frexp, libfunc.Frexpf, libfunc.Frexpl)
	def(Rule{Family: FamilyNumeric, Fn: WillReturn}, libfunc.Ldexp, libfunc.Ldexpf, libfunc.Ldexpl)
	def(numeric,
		libfunc.Abs, libfunc.Labs, libfunc.Llabs,
		libfunc.Acos, libfunc.Acosf, libfunc.Acosl, libfunc.Acosh, libfunc.Acoshf, libfunc.Acoshl,
		libfunc.Asin, libfunc.Asinf, libfunc.Asinl, libfunc.Asinh, libfunc.Asinhf, libfunc.Asinhl,
		libfunc.Atan, libfunc.Atanf, libfunc.Atanl, libfunc.Atanh, libfunc.Atanhf, libfunc.Atanhl,
		libfunc.Atan2, libfunc.Atan2f, libfunc.Atan2l,
		libfunc.Cbrt, libfunc.Cbrtf, libfunc.Cbrtl,
		libfunc.Ceil, libfunc.Ceilf, libfunc.Ceill,
		libfunc.Copysign, libfunc.Copysignf, libfunc.Copysignl,
		libfunc.Cos, libfunc.Cosf, libfunc.Cosl, libfunc.Cosh, libfunc.Coshf, libfunc.Coshl,
		libfunc.Cospi, libfunc.Cospif,
		libfunc.Exp, libfunc.Expf, libfunc.Expl, libfunc.Exp2, libfunc.Exp2f, libfunc.Exp2l,
		libfunc.Expm1, libfunc.Expm1f, libfunc.Expm1l,
		libfunc.Fabs, libfunc.Fabsf, libfunc.Fabsl,
		libfunc.Ffs, libfunc.Ffsl, libfunc.Ffsll, libfunc.Fls, libfunc.Flsl, libfunc.Flsll,
		libfunc.Floor, libfunc.Floorf, libfunc.Floorl,
		libfunc.Fmax, libfunc.Fmaxf, libfunc.Fmaxl, libfunc.Fmin, libfunc.Fminf, libfunc.Fminl,
		libfunc.Fmod, libfunc.Fmodf, libfunc.Fmodl,
		libfunc.Isascii, libfunc.Isdigit, libfunc.Toascii,
		libfunc.Log, libfunc.Logf, libfunc.Logl, libfunc.Log10, libfunc.Log10f, libfunc.Log10l,
		libfunc.Log1p, libfunc.Log1pf, libfunc.Log1pl, libfunc.Log2, libfunc.Log2f, libfunc.Log2l,
		libfunc.Logb, libfunc.Logbf, libfunc.Logbl,
		libfunc.Nearbyint, libfunc.Nearbyintf, libfunc.Nearbyintl,
		libfunc.Pow, libfunc.Powf, libfunc.Powl,
		libfunc.Rint, libfunc.Rintf, libfunc.Rintl,
		libfunc.Round, libfunc.Roundf, libfunc.Roundl,
		libfunc.Sin, libfunc.Sinf, libfunc.Sinl, libfunc.Sinh, libfunc.Sinhf, libfunc.Sinhl,
		libfunc.Sinpi, libfunc.Sinpif, libfunc.SincospifStret,
		libfunc.Sqrt, libfunc.Sqrtf, libfunc.Sqrtl,
		libfunc.Tan, libfunc.Tanf, libfunc.Tanl, libfunc.Tanh, libfunc.Tanhf, libfunc.Tanhl,
		libfunc.Trunc, libfunc.Truncf, libfunc.Truncl,
	)

	for _, id := range libfunc.All() {
		_, ruled := rules[id]
		switch {
		case ruled && unannotated[id]:
			panic(fmt.Sprintf("libcall: %s is both ruled and unannotated", id))
		case !ruled && !unannotated[id]:
			panic(fmt.Sprintf("libcall: no rule for %s", id))
		}
	}
}

// RuleFor returns the rule for id. Unannotated identifiers report a rule of
// FamilyUnannotated with no facts and ok == true; unknown identifiers
// report ok == false.
func RuleFor(id libfunc.ID) (Rule, bool) {
	if r, ok := rules[id]; ok {
		return r, true
	}
	if unannotated[id] {
		return Rule{Family: FamilyUnannotated}, true
	}
	return Rule{}, false
}

// IsUnannotated reports whether id is known but carries no facts beyond
// the defaults.
func IsUnannotated(id libfunc.ID) bool { return unannotated[id] }
