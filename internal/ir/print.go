package ir

import (
	"fmt"
	"io"
	"strings"
)

// String renders the module in textual form.
func (m *Module) String() string {
	var sb strings.Builder
	if err := Print(&sb, m); err != nil {
		return "<print error: " + err.Error() + ">"
	}
	return sb.String()
}

// Print writes the textual form of m to w.
func Print(w io.Writer, m *Module) error {
	var buf strings.Builder
	fmt.Fprintf(&buf, "; ModuleID = '%s'\n", m.Name)
	for _, g := range m.order {
		switch g := g.(type) {
		case *GlobalVar:
			info := m.Types.MustLookup(g.typ)
			fmt.Fprintf(&buf, "@%s = external global %s\n", g.name, m.Types.String(info.Elem))
		case *Function:
			printFunction(&buf, g)
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func printFunction(buf *strings.Builder, f *Function) {
	types := f.parent.Types
	info := f.Signature()
	keyword := "declare"
	if !f.IsDeclaration() {
		keyword = "define"
	}
	buf.WriteString("\n")
	buf.WriteString(keyword)
	if f.CallConv != CallConvC {
		buf.WriteString(" " + f.CallConv.String())
	}
	if ret := f.Attrs.Ret.String(); ret != "" {
		buf.WriteString(" " + ret)
	}
	fmt.Fprintf(buf, " %s @%s(", types.String(info.Result), f.name)
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(types.String(p.typ))
		if i < len(f.Attrs.Params) {
			if s := f.Attrs.Params[i].String(); s != "" {
				buf.WriteString(" " + s)
			}
		}
		if !f.IsDeclaration() {
			buf.WriteString(" " + p.Ref())
		}
	}
	if info.Variadic {
		if len(f.params) > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("...")
	}
	buf.WriteString(")")
	if fn := f.Attrs.Fn.String(); fn != "" {
		buf.WriteString(" " + fn)
	}
	if f.IsDeclaration() {
		buf.WriteString("\n")
		return
	}
	buf.WriteString(" {\n")
	for i, b := range f.blocks {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "%s:\n", b.Name)
		for _, in := range b.Instrs {
			buf.WriteString("  ")
			printInstr(buf, types, in)
			buf.WriteString("\n")
		}
	}
	buf.WriteString("}\n")
}

func printInstr(buf *strings.Builder, types *Types, in Instr) {
	switch in := in.(type) {
	case *Call:
		if in.name != "" {
			fmt.Fprintf(buf, "%%%s = ", in.name)
		}
		buf.WriteString("call ")
		if in.CallConv != CallConvC {
			buf.WriteString(in.CallConv.String() + " ")
		}
		info := in.Callee.Signature()
		if info.Variadic {
			fmt.Fprintf(buf, "%s ", types.String(in.Callee.typ))
		} else {
			fmt.Fprintf(buf, "%s ", types.String(info.Result))
		}
		fmt.Fprintf(buf, "@%s(", in.Callee.name)
		for i, a := range in.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%s %s", types.String(a.Type()), a.Ref())
		}
		buf.WriteString(")")
		if fn := in.Attrs.Fn.String(); fn != "" {
			buf.WriteString(" " + fn)
		}
	case *Cast:
		fmt.Fprintf(buf, "%%%s = %s %s %s to %s", in.name, in.Op, types.String(in.Val.Type()), in.Val.Ref(), types.String(in.To))
	case *Ret:
		if in.Val == nil {
			buf.WriteString("ret void")
			return
		}
		fmt.Fprintf(buf, "ret %s %s", types.String(in.Val.Type()), in.Val.Ref())
	}
}
