package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/athread/lichen"
	"github.com/athread/lichen/internal/config"
	"github.com/athread/lichen/notes"
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	debug      bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lichen",
		Short: "Structured plain-text notes in the terminal",
		Long: `lichen keeps notes written in a small markup: "# " headings,
"- " bullets, "- [ ] " checklists, "---" dividers, and **bold**, *italic*
and ` + "`code`" + ` spans.

Examples:
  lichen new "groceries"
  lichen list --sort title
  lichen show 3f2a
  lichen check 3f2a 2`,
		Version:           lichen.BuildVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lichen/config.yaml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newNewCmd(a),
		newEditCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newCheckCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newBlocksCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	level := cfg.SlogLevel()
	if a.debug {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func (a *app) openStore() (*notes.Store, error) {
	return notes.NewStore(a.cfg.DBPath, a.log)
}

// withStore opens the store for the duration of fn.
func (a *app) withStore(fn func(*notes.Store) error) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			a.log.Warn("close store", "err", err)
		}
	}()
	return fn(st)
}

// readInput reads path, or stdin when path is "" or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
