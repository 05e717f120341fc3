package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"gardenbook/config"
	"gardenbook/database"
	"gardenbook/pkg/exportimport/repository"
	"gardenbook/pkg/exportimport/repositoryImp"
	"gardenbook/pkg/exportimport/types"
	"gardenbook/pkg/logger"
)

type globals struct {
	dbPath   string
	uid      string
	logLevel string
	cfg      config.AppConfig
	log      zerolog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "gardenctl",
		Short:        "Export and import gardenbook account snapshots",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if g.dbPath != "" {
				cfg.DBPath = g.dbPath
			}
			if g.logLevel != "" {
				cfg.LogLevel = g.logLevel
			}
			g.cfg = cfg
			g.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, true)
			if g.uid == "" {
				return fmt.Errorf("--uid is required")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&g.dbPath, "db", "", "database path (defaults to DB_PATH)")
	root.PersistentFlags().StringVar(&g.uid, "uid", "", "account the command acts as")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (defaults to LOG_LEVEL)")

	root.AddCommand(newExportCmd(g), newPreviewCmd(g), newImportCmd(g))
	return root
}

func (g *globals) store() (repository.Store, error) {
	db, err := database.OpenSQLite(g.cfg.DBPath, g.log)
	if err != nil {
		return nil, err
	}
	return repositoryImp.New(db), nil
}

func readSnapshot(path string, stdin io.Reader) (*types.Snapshot, error) {
	var r io.Reader = stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var snap types.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
