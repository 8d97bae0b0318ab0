package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"libcall/internal/ir"
)

func newInspectCmd() *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Print a msgpack snapshot written by declare --emit msgpack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}
			snap, err := ir.DecodeSnapshot(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if len(only) > 0 {
				snap, err = filterSnapshot(snap, only)
				if err != nil {
					return err
				}
			}
			return snap.Print(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVar(&only, "decl", nil, "only print these declarations")
	return cmd
}

func filterSnapshot(snap *ir.Snapshot, names []string) (*ir.Snapshot, error) {
	out := &ir.Snapshot{Schema: snap.Schema, Module: snap.Module}
	for _, name := range names {
		d, ok := snap.Decl(name)
		if !ok {
			return nil, fmt.Errorf("no declaration @%s in %s", name, snap.Module)
		}
		out.Decls = append(out.Decls, *d)
	}
	return out, nil
}
