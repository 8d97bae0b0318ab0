package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"libcall/internal/libcall"
	"libcall/internal/libfunc"
)

type rulesOptions struct {
	family string
	format string
}

// ruleRow is the serializable view of one rule.
type ruleRow struct {
	Name        string     `json:"name" yaml:"name"`
	Proto       string     `json:"proto" yaml:"proto"`
	Family      string     `json:"family" yaml:"family"`
	Access      []string   `json:"access,omitempty" yaml:"access,omitempty"`
	Fn          []string   `json:"fn,omitempty" yaml:"fn,omitempty"`
	Params      []paramRow `json:"params,omitempty" yaml:"params,omitempty"`
	AllocSize   string     `json:"alloc_size,omitempty" yaml:"alloc_size,omitempty"`
	AllocFamily string     `json:"alloc_family,omitempty" yaml:"alloc_family,omitempty"`
	FreeLike    bool       `json:"free_like,omitempty" yaml:"free_like,omitempty"`
}

type paramRow struct {
	Arg   int      `json:"arg" yaml:"arg"`
	Facts []string `json:"facts" yaml:"facts,flow"`
}

func newRulesCmd() *cobra.Command {
	opts := &rulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [names...]",
		Short: "Show the attribute rule of library functions",
		Long: `Show the attribute rule of each named library function, or of every
known function when no names are given. Names match case-insensitively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := collectRules(args, opts.family)
			if err != nil {
				return err
			}
			return renderRules(cmd.OutOrStdout(), rows, opts.format, !color.NoColor)
		},
	}
	cmd.Flags().StringVar(&opts.family, "family", "", "only show rules of this family")
	cmd.Flags().StringVar(&opts.format, "format", "table", "output format (table|json|yaml)")
	return cmd
}

var fold = cases.Fold()

// lookupName maps a user-supplied name to an ID. Exact symbols win; other
// spellings are compared case-folded.
func lookupName(name string) (libfunc.ID, error) {
	name = strings.TrimSpace(name)
	if id, ok := libfunc.ByName(name); ok {
		return id, nil
	}
	want := fold.String(name)
	for _, id := range libfunc.All() {
		if fold.String(id.Symbol()) == want {
			return id, nil
		}
	}
	return libfunc.Invalid, fmt.Errorf("%w %q", libfunc.ErrUnknownFunction, name)
}

func collectRules(names []string, family string) ([]ruleRow, error) {
	ids := libfunc.All()
	if len(names) > 0 {
		ids = ids[:0:0]
		for _, name := range names {
			id, err := lookupName(name)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	wantFamily := fold.String(strings.TrimSpace(family))

	rows := make([]ruleRow, 0, len(ids))
	for _, id := range ids {
		rule, ok := libcall.RuleFor(id)
		if !ok {
			continue
		}
		if wantFamily != "" && fold.String(string(rule.Family)) != wantFamily {
			continue
		}
		rows = append(rows, makeRuleRow(id, rule))
	}
	return rows, nil
}

func makeRuleRow(id libfunc.ID, rule libcall.Rule) ruleRow {
	row := ruleRow{
		Name:        id.Symbol(),
		Proto:       id.Proto(),
		Family:      string(rule.Family),
		Fn:          rule.Fn.Strings(),
		AllocFamily: rule.AllocFamily,
		FreeLike:    rule.FreeLike,
	}
	for _, a := range rule.Access {
		row.Access = append(row.Access, a.String())
	}
	for _, p := range rule.Params {
		row.Params = append(row.Params, paramRow{Arg: p.Arg, Facts: p.Facts.Strings()})
	}
	if rule.AllocSize != nil {
		row.AllocSize = rule.AllocSize.String()
	}
	return row
}

func renderRules(w io.Writer, rows []ruleRow, format string, styled bool) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		t := newTable("NAME", "FAMILY", "ACCESS", "FN", "PARAMS")
		for _, r := range rows {
			t.add(r.Name, r.Family, joinOrDash(r.Access, ","), joinOrDash(fnColumn(r), ","), paramsColumn(r.Params))
		}
		return t.render(w, styled)
	default:
		return fmt.Errorf("unsupported format %q (must be table, json or yaml)", format)
	}
}

func fnColumn(r ruleRow) []string {
	out := append([]string(nil), r.Fn...)
	if r.AllocSize != "" {
		out = append(out, r.AllocSize)
	}
	if r.AllocFamily != "" {
		out = append(out, "alloc-family="+r.AllocFamily)
	}
	if r.FreeLike {
		out = append(out, "may-free")
	}
	return out
}

func paramsColumn(params []paramRow) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = "#" + strconv.Itoa(p.Arg) + ":" + strings.Join(p.Facts, ",")
	}
	return strings.Join(parts, " ")
}

func joinOrDash(items []string, sep string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, sep)
}
