package libcall

// Counter names one statistic the applier maintains. Each counter moves
// only when its attribute is newly added.
type Counter uint8

const (
	CountReadNone Counter = iota
	CountReadOnly
	CountWriteOnly
	CountArgMemOnly
	CountInaccessibleMemOnly
	CountInaccessibleOrArgMemOnly
	CountNoUnwind
	CountNoFree
	CountWillReturn
	CountNonLazyBind
	CountNoCapture
	CountArgReadOnly
	CountArgWriteOnly
	CountNoAlias
	CountArgNoAlias
	CountNoUndef
	CountReturned
	CountAllocSize
	CountAllocAlign
	CountAllocatedPointer
	CountAllocFamily

	NumCounters
)

var counterInfo = [NumCounters]struct{ name, desc string }{
	CountReadNone:                 {"readnone", "functions inferred as readnone"},
	CountReadOnly:                 {"readonly", "functions inferred as readonly"},
	CountWriteOnly:                {"writeonly", "functions inferred as writeonly"},
	CountArgMemOnly:               {"argmemonly", "functions inferred as argmemonly"},
	CountInaccessibleMemOnly:      {"inaccessiblememonly", "functions inferred as inaccessiblememonly"},
	CountInaccessibleOrArgMemOnly: {"inaccessiblemem_or_argmemonly", "functions inferred as inaccessiblemem_or_argmemonly"},
	CountNoUnwind:                 {"nounwind", "functions inferred as nounwind"},
	CountNoFree:                   {"nofree", "functions inferred as nofree"},
	CountWillReturn:               {"willreturn", "functions inferred as willreturn"},
	CountNonLazyBind:              {"nonlazybind", "functions inferred as nonlazybind"},
	CountNoCapture:                {"nocapture", "arguments inferred as nocapture"},
	CountArgReadOnly:              {"arg-readonly", "arguments inferred as readonly"},
	CountArgWriteOnly:             {"arg-writeonly", "arguments inferred as writeonly"},
	CountNoAlias:                  {"noalias", "function returns inferred as noalias"},
	CountArgNoAlias:               {"arg-noalias", "arguments inferred as noalias"},
	CountNoUndef:                  {"noundef", "return values and arguments inferred as noundef"},
	CountReturned:                 {"returned", "arguments inferred as returned"},
	CountAllocSize:                {"allocsize", "functions inferred as allocsize"},
	CountAllocAlign:               {"allocalign", "arguments inferred as allocalign"},
	CountAllocatedPointer:         {"allocptr", "arguments inferred as allocptr"},
	CountAllocFamily:              {"alloc-family", "functions tagged with an alloc-family"},
}

func (c Counter) String() string {
	if c < NumCounters {
		return counterInfo[c].name
	}
	return "unknown"
}

// Description is the human-readable meaning of the counter.
func (c Counter) Description() string {
	if c < NumCounters {
		return counterInfo[c].desc
	}
	return ""
}

// Counters receives statistic increments. It must be safe for concurrent
// use when one applier is shared between goroutines.
type Counters interface {
	Inc(Counter)
}

type nopCounters struct{}

func (nopCounters) Inc(Counter) {}
