package main

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"libcall/internal/ir"
	"libcall/internal/libfunc"
	"libcall/internal/target"
)

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List builtin target profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable("NAME", "TRIPLE", "OS", "WORD", "LONG DOUBLE", "INT EXT", "FUNCS")
			for _, name := range target.BuiltinNames() {
				p, err := target.Builtin(name)
				if err != nil {
					return err
				}
				ti, err := libfunc.NewTargetInfo(p)
				if err != nil {
					return err
				}
				t.add(p.Name, p.Triple, string(p.OS), strconv.Itoa(p.WordBits),
					p.LongDouble.String(), extColumn(ti), strconv.Itoa(len(ti.Available())))
			}
			return t.render(cmd.OutOrStdout(), !color.NoColor)
		},
	}
}

// extColumn describes how narrow int arguments are passed.
func extColumn(ti *libfunc.TargetInfo) string {
	signed, unsigned := ti.ExtAttr(true), ti.ExtAttr(false)
	if signed == ir.AttrNone {
		return "-"
	}
	if signed == unsigned {
		return signed.String()
	}
	return strings.Join([]string{signed.String(), unsigned.String()}, "/")
}
