package ir

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Snapshot layout changes.
const snapshotSchemaVersion uint16 = 1

// ErrSnapshotSchema reports a snapshot written by an incompatible version.
var ErrSnapshotSchema = errors.New("snapshot schema mismatch")

// Snapshot is a serializable summary of a module's function declarations
// and their attributes.
type Snapshot struct {
	Schema uint16
	Module string
	Decls  []DeclSnapshot
}

// DeclSnapshot captures one function.
type DeclSnapshot struct {
	Name        string
	Type        string
	CallConv    uint16
	Declaration bool
	Fn          []string
	Ret         []string
	Params      [][]string
}

// TakeSnapshot summarizes every function of m.
func TakeSnapshot(m *Module) *Snapshot {
	snap := &Snapshot{Schema: snapshotSchemaVersion, Module: m.Name}
	for _, f := range m.Functions() {
		d := DeclSnapshot{
			Name:        f.name,
			Type:        m.Types.String(f.typ),
			CallConv:    uint16(f.CallConv),
			Declaration: f.IsDeclaration(),
			Fn:          f.Attrs.Fn.Strings(),
			Ret:         f.Attrs.Ret.Strings(),
			Params:      make([][]string, len(f.params)),
		}
		for i := range f.params {
			if i < len(f.Attrs.Params) {
				d.Params[i] = f.Attrs.Params[i].Strings()
			} else {
				d.Params[i] = []string{}
			}
		}
		snap.Decls = append(snap.Decls, d)
	}
	return snap
}

// EncodeSnapshot serializes m with msgpack.
func EncodeSnapshot(m *Module) ([]byte, error) {
	data, err := msgpack.Marshal(TakeSnapshot(m))
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses data produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSnapshotSchema, snap.Schema, snapshotSchemaVersion)
	}
	return &snap, nil
}

// Decl finds a declaration by name.
func (s *Snapshot) Decl(name string) (*DeclSnapshot, bool) {
	for i := range s.Decls {
		if s.Decls[i].Name == name {
			return &s.Decls[i], true
		}
	}
	return nil, false
}

// Print writes a human-readable listing.
func (s *Snapshot) Print(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; snapshot of '%s' (%d functions)\n", s.Module, len(s.Decls))
	for _, d := range s.Decls {
		fmt.Fprintf(&sb, "@%s : %s", d.Name, d.Type)
		if d.CallConv != uint16(CallConvC) {
			fmt.Fprintf(&sb, " [%s]", CallConv(d.CallConv))
		}
		sb.WriteString("\n")
		if len(d.Fn) > 0 {
			fmt.Fprintf(&sb, "  fn:  %s\n", strings.Join(d.Fn, " "))
		}
		if len(d.Ret) > 0 {
			fmt.Fprintf(&sb, "  ret: %s\n", strings.Join(d.Ret, " "))
		}
		for i, p := range d.Params {
			if len(p) > 0 {
				fmt.Fprintf(&sb, "  #%d:  %s\n", i, strings.Join(p, " "))
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
