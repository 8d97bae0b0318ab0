package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"libcall/internal/ir"
	"libcall/internal/libcall"
	"libcall/internal/libfunc"
	"libcall/internal/observ"
	"libcall/internal/target"
	"libcall/internal/trace"
)

type declareOptions struct {
	targets    []string
	emit       string
	output     string
	got        bool
	assertions bool
	stats      bool
	jobs       int
}

// declaration is the outcome of declaring into one target's module.
type declaration struct {
	profile  target.Profile
	module   *ir.Module
	counters *observ.CounterSet[libcall.Counter]
	declared int
	skipped  []string
}

func newDeclareCmd() *cobra.Command {
	opts := &declareOptions{}
	cmd := &cobra.Command{
		Use:   "declare [names...]",
		Short: "Declare library functions into a module per target",
		Long: `Declare each named library function with its accepted prototype into a
fresh module for every --target, inferring attributes on the way. Without
names every function available on the target is declared.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeclare(cmd, args, opts)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.targets, "target", "t", []string{"x86_64-linux-gnu"}, "builtin target name or .toml profile (repeatable)")
	cmd.Flags().StringVar(&opts.emit, "emit", "text", "output kind (text|msgpack)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or directory for msgpack with several targets")
	cmd.Flags().BoolVar(&opts.got, "got", false, "reach library calls through the GOT (adds nonlazybind)")
	cmd.Flags().BoolVar(&opts.assertions, "assertions", false, "fail on narrow integer parameters missing ABI extension")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print inference counters per target")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "targets processed in parallel")
	return cmd
}

func runDeclare(cmd *cobra.Command, names []string, opts *declareOptions) error {
	switch opts.emit {
	case "text", "msgpack":
	default:
		return fmt.Errorf("unsupported emit kind %q (must be text or msgpack)", opts.emit)
	}
	if len(opts.targets) == 0 {
		return errors.New("at least one --target is required")
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	timer := observ.NewTimer()
	ctx, span := trace.BeginChild(cmd.Context(), trace.ScopeDriver, "declare")

	results, err := declareAll(ctx, names, opts, timer)
	if err != nil {
		span.End("failed")
		return err
	}

	emit := timer.Begin("emit")
	err = writeDeclarations(cmd.OutOrStdout(), results, opts)
	timer.End(emit, opts.emit)
	span.WithExtra("targets", strconv.Itoa(len(results))).End("")
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	for _, d := range results {
		if len(d.skipped) > 0 && !quiet(cmd) {
			fmt.Fprintf(errOut, "note: %s: unavailable: %s\n", d.profile.Name, strings.Join(d.skipped, ", "))
		}
		if opts.stats {
			printStats(errOut, d)
		}
	}
	if timingsEnabled(cmd) {
		fmt.Fprint(errOut, timer.Summary())
	}
	return nil
}

// declareAll processes every target concurrently. Each goroutine owns its
// module; results keep the order of opts.targets.
func declareAll(ctx context.Context, names []string, opts *declareOptions, timer *observ.Timer) ([]*declaration, error) {
	results := make([]*declaration, len(opts.targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(opts.jobs, len(opts.targets))))
	for i, tgt := range opts.targets {
		g.Go(func() error {
			phase := timer.Begin("declare " + tgt)
			d, err := declareTarget(gctx, tgt, names, opts)
			if err != nil {
				timer.End(phase, "failed")
				return err
			}
			timer.End(phase, fmt.Sprintf("%d decls", d.declared))
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func declareTarget(ctx context.Context, tgt string, names []string, opts *declareOptions) (d *declaration, err error) {
	ctx, span := trace.BeginChild(ctx, trace.ScopeTarget, "target "+tgt)
	defer func() {
		if err != nil {
			span.End("failed")
			return
		}
		span.WithExtra("declared", strconv.Itoa(d.declared)).End("")
	}()

	p, err := target.Resolve(tgt)
	if err != nil {
		return nil, err
	}
	ti, err := libfunc.NewTargetInfo(p)
	if err != nil {
		return nil, err
	}
	ids := ti.Available()
	if len(names) > 0 {
		ids = make([]libfunc.ID, 0, len(names))
		for _, name := range names {
			id, err := lookupName(name)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}

	d = &declaration{
		profile:  p,
		module:   p.NewModule("libcall." + p.Name),
		counters: observ.NewCounterSet[libcall.Counter](int(libcall.NumCounters)),
	}
	if opts.got {
		d.module.RtLibUseGOT = true
	}

	modCtx, modSpan := trace.BeginChild(ctx, trace.ScopeModule, "module "+d.module.Name)
	defer modSpan.End("")
	r := libcall.NewResolver(libcall.Config{
		Registry:   ti,
		Counters:   d.counters,
		Tracer:     trace.FromContext(modCtx),
		Span:       trace.CurrentSpan(modCtx).SpanID,
		Assertions: opts.assertions,
	})

	defer func() {
		if rec := recover(); rec != nil {
			v, ok := rec.(*libcall.ContractViolation)
			if !ok {
				panic(rec)
			}
			d, err = nil, fmt.Errorf("%s: %w", p.Name, v)
		}
	}()
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		proto, ok := ti.Prototype(d.module.Types, id)
		if !ok {
			continue
		}
		if _, err := r.Resolve(d.module, id, proto); err != nil {
			if errors.Is(err, libcall.ErrUnavailable) {
				d.skipped = append(d.skipped, id.Symbol())
				continue
			}
			return nil, err
		}
		d.declared++
	}
	return d, nil
}

func writeDeclarations(stdout io.Writer, results []*declaration, opts *declareOptions) error {
	if opts.emit == "msgpack" && len(results) > 1 {
		if opts.output == "" {
			return errors.New("--emit msgpack with several targets needs -o <dir>")
		}
		if err := os.MkdirAll(opts.output, 0o755); err != nil {
			return err
		}
		for _, d := range results {
			data, err := ir.EncodeSnapshot(d.module)
			if err != nil {
				return err
			}
			path := filepath.Join(opts.output, d.profile.Name+".msgpack")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
		}
		return nil
	}

	w := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if opts.emit == "msgpack" {
		data, err := ir.EncodeSnapshot(results[0].module)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	for i, d := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "; target %s\n", d.profile)
		}
		if err := ir.Print(w, d.module); err != nil {
			return err
		}
	}
	return nil
}

func printStats(w io.Writer, d *declaration) {
	fmt.Fprintf(w, "stats for %s: %d declarations, %d facts added\n", d.profile.Name, d.declared, d.counters.Total())
	d.counters.Each(func(c libcall.Counter, v uint64) {
		fmt.Fprintf(w, "  %-30s %5d  %s\n", c.String(), v, c.Description())
	})
}
