package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gardenbook/pkg/exportimport/serviceImp"
	"gardenbook/pkg/exportimport/types"
)

func newExportCmd(g *globals) *cobra.Command {
	var out string
	var readings bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the account's snapshot as JSON",
		Long: `Write every record owned by --uid as a snapshot.

Examples:
  gardenctl export --uid U123 -o backup.json
  gardenctl export --uid U123 --sensor-readings > full.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := g.store()
			if err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			svc := serviceImp.NewExportService(store, g.cfg.AppVersion, g.cfg.ExportBatchSize, g.log)
			return svc.ExportTo(cmd.Context(), w, g.uid, types.ExportOptions{IncludeSensorReadings: readings})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&readings, "sensor-readings", false, "include sensor readings")
	return cmd
}

func newPreviewCmd(g *globals) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "preview [snapshot.json]",
		Short: "Validate a snapshot without writing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := types.ParseMode(mode)
			if err != nil {
				return err
			}
			snap, err := readSnapshot(firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			store, err := g.store()
			if err != nil {
				return err
			}
			p, err := serviceImp.NewImportService(store, g.log).Preview(cmd.Context(), g.uid, snap, m)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), p); err != nil {
				return err
			}
			if !p.Valid {
				return fmt.Errorf("%w: %d error(s)", types.ErrValidationFailed, p.ErrorCount())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(types.ModeMerge), "dry_run, merge or overwrite")
	return cmd
}

func newImportCmd(g *globals) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "import [snapshot.json]",
		Short: "Import a snapshot into the account",
		Long: `Import a snapshot for --uid.

Modes:
  dry_run    validate only
  merge      add the snapshot's records next to existing ones
  overwrite  delete every record the account owns, then import

The import is a single transaction: on any failure nothing changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := types.ParseMode(mode)
			if err != nil {
				return err
			}
			snap, err := readSnapshot(firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			store, err := g.store()
			if err != nil {
				return err
			}
			res, err := serviceImp.NewImportService(store, g.log).Import(cmd.Context(), g.uid, snap, m)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("import rejected: %s", res.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(types.ModeMerge), "dry_run, merge or overwrite")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
