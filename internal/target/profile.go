package target

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"libcall/internal/ir"
)

//go:embed profiles/*.toml
var builtinFS embed.FS

var (
	// ErrUnknownTarget reports a name that is neither builtin nor a file.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrTargetSectionMissing reports a profile without [target].
	ErrTargetSectionMissing = errors.New("missing [target]")
)

type profileFile struct {
	Target   targetSection   `toml:"target"`
	ABI      abiSection      `toml:"abi"`
	Codegen  codegenSection  `toml:"codegen"`
	Libcalls libcallsSection `toml:"libcalls"`
}

type targetSection struct {
	Name        string `toml:"name"`
	Triple      string `toml:"triple"`
	OS          string `toml:"os"`
	WordBits    int    `toml:"word_bits"`
	PointerBits int    `toml:"pointer_bits"`
	LongBits    int    `toml:"long_bits"`
	SizeBits    int    `toml:"size_bits"`
	LongDouble  string `toml:"long_double"`
}

type abiSection struct {
	ExtI32Param     bool `toml:"ext_i32_param"`
	SignExtI32Param bool `toml:"sign_ext_i32_param"`
}

type codegenSection struct {
	RtLibUseGOT bool `toml:"rtlib_use_got"`
}

type libcallsSection struct {
	Enable  []string `toml:"enable"`
	Disable []string `toml:"disable"`
}

// BuiltinNames lists the embedded profiles.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("profiles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Builtin loads an embedded profile by name.
func Builtin(name string) (Profile, error) {
	data, err := builtinFS.ReadFile(path.Join("profiles", name+".toml"))
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return Parse(data, name+".toml")
}

// LoadFile reads a profile from disk.
func LoadFile(filename string) (Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read target profile: %w", err)
	}
	return Parse(data, filename)
}

// Resolve accepts either a builtin name or a path to a .toml file.
func Resolve(nameOrPath string) (Profile, error) {
	if strings.HasSuffix(nameOrPath, ".toml") {
		return LoadFile(nameOrPath)
	}
	return Builtin(nameOrPath)
}

// Parse decodes and validates a profile. source is used in error messages.
func Parse(data []byte, source string) (Profile, error) {
	var f profileFile
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: failed to parse TOML: %w", source, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Profile{}, fmt.Errorf("%s: unknown key %s", source, undecoded[0])
	}
	if !meta.IsDefined("target") {
		return Profile{}, fmt.Errorf("%s: %w", source, ErrTargetSectionMissing)
	}
	for _, key := range []string{"name", "triple", "os", "word_bits", "pointer_bits", "long_double"} {
		if !meta.IsDefined("target", key) {
			return Profile{}, fmt.Errorf("%s: missing [target].%s", source, key)
		}
	}

	t := f.Target
	p := Profile{
		Name:            strings.TrimSpace(t.Name),
		Triple:          strings.TrimSpace(t.Triple),
		OS:              OS(strings.ToLower(t.OS)),
		WordBits:        t.WordBits,
		PointerBits:     t.PointerBits,
		LongBits:        t.LongBits,
		SizeBits:        t.SizeBits,
		ExtI32Param:     f.ABI.ExtI32Param,
		SignExtI32Param: f.ABI.SignExtI32Param,
		RtLibUseGOT:     f.Codegen.RtLibUseGOT,
		Enable:          f.Libcalls.Enable,
		Disable:         f.Libcalls.Disable,
	}
	if p.LongBits == 0 {
		p.LongBits = p.WordBits
	}
	if p.SizeBits == 0 {
		p.SizeBits = p.PointerBits
	}
	if p.LongDouble, err = ir.ParseFloatKind(t.LongDouble); err != nil {
		return Profile{}, fmt.Errorf("%s: [target].long_double: %w", source, err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", source, err)
	}
	return p, nil
}

func (p Profile) validate() error {
	if p.Name == "" {
		return errors.New("empty [target].name")
	}
	if p.Triple == "" {
		return errors.New("empty [target].triple")
	}
	if !p.OS.valid() {
		return fmt.Errorf("unsupported os %q", p.OS)
	}
	for _, w := range []struct {
		key  string
		bits int
	}{
		{"word_bits", p.WordBits},
		{"pointer_bits", p.PointerBits},
		{"long_bits", p.LongBits},
		{"size_bits", p.SizeBits},
	} {
		if w.bits != 16 && w.bits != 32 && w.bits != 64 {
			return fmt.Errorf("unsupported [target].%s %d (expected 16|32|64)", w.key, w.bits)
		}
	}
	if p.LongDouble == ir.FloatHalf || p.LongDouble == ir.FloatSingle {
		return fmt.Errorf("long_double cannot be %s", p.LongDouble)
	}
	if p.ExtI32Param && p.SignExtI32Param {
		return errors.New("[abi] ext_i32_param and sign_ext_i32_param are exclusive")
	}
	return nil
}
