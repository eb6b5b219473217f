package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/internal/config"
	"github.com/aretw0/quill/internal/logx"
)

// app carries the state shared by every subcommand.
type app struct {
	file       string
	configPath string
	verbose    bool
	jsonOut    bool

	cfg     config.Config
	logger  *slog.Logger
	manager *quill.Manager
}

// newRootCmd represents the base command when called without any subcommands.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "quill",
		Short: "A personal note store backed by a single file",
		Long: `Quill keeps short notes (title, body, tags, timestamps) in one JSON or YAML file.
Every change is written back to the file immediately.

Environment:
` + config.Usage(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "Notes store (overrides QUILL_FILE)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (YAML, JSON or TOML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Output in JSON format")

	root.AddCommand(
		newCreateCmd(a),
		newListCmd(a),
		newReadCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newSearchCmd(a),
		newWatchCmd(a),
		newImportCmd(a),
		newInfoCmd(a),
		newVersionCmd(),
	)

	return root
}

// open loads configuration, builds the logger and opens the store.
// Commands that touch notes call it from PreRunE.
func (a *app) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Parse(a.configPath)
	if err != nil {
		return err
	}
	if a.file != "" {
		cfg.File = a.file
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	logger, err := logx.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Pretty)
	if err != nil {
		return err
	}
	a.logger = logger

	m, err := quill.Open(cmd.Context(), cfg.File,
		quill.WithLogger(logger),
		quill.WithIDPolicy(cfg.Policy()),
		quill.WithPerm(cfg.FileMode()),
		quill.WithStrict(cfg.Strict),
	)
	if err != nil {
		return fmt.Errorf("failed to open notes: %w", err)
	}
	a.manager = m
	logger.Debug("store opened", "file", cfg.File, "notes", len(m.ReadAll()))
	return nil
}
