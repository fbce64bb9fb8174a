// Package cli wires config, logging and the item source into the lists
// command tree.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/idilsaglam/lists/internal/config"
	"github.com/idilsaglam/lists/internal/source"
	"github.com/idilsaglam/lists/internal/store"
	"github.com/idilsaglam/lists/internal/tui"
	"github.com/idilsaglam/lists/internal/ui"
)

type options struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
}

// New returns the root command. Without a subcommand it starts the
// interactive screen.
func New() *cobra.Command {
	o := &options{v: config.New()}

	root := &cobra.Command{
		Use:   "lists",
		Short: "Build a new list out of two existing ones",
		Long: `lists fetches two numbered lists from the list API and lets you pick
items from both into a new list.

Select exactly two lists with space, press c, move items across with enter,
then press u to add the new list or esc to put everything back.
Nothing is sent back to the server.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: o.runTUI,
	}

	f := root.PersistentFlags()
	f.String("endpoint", "", "list API endpoint (default "+source.DefaultEndpoint+")")
	f.Duration("timeout", 0, "give up on the API after this long (default 10s)")
	f.String("from-file", "", "read lists from a JSON file instead of the API")
	f.String("theme", "", "classic, neon or mono")
	f.String("log-file", "", "write logs here")
	f.BoolP("verbose", "v", false, "debug logging")
	for key, flag := range map[string]string{
		"api.endpoint": "endpoint",
		"api.timeout":  "timeout",
		"api.file":     "from-file",
		"ui.theme":     "theme",
		"log.file":     "log-file",
		"log.verbose":  "verbose",
	} {
		_ = o.v.BindPFlag(key, f.Lookup(flag))
	}

	root.AddCommand(o.newShowCmd())
	return root
}

func (o *options) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(o.v)
	if err != nil {
		return err
	}
	o.cfg = cfg
	ui.SetTheme(cfg.UI.Theme)

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger
	return nil
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(c.File), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.OutputPaths = []string{c.File}
	zc.ErrorOutputPaths = []string{c.File}
	return zc.Build()
}

func (o *options) source() store.Source {
	if o.cfg.API.File != "" {
		return source.File{Path: o.cfg.API.File}
	}
	return source.NewHTTP(o.cfg.API.Endpoint, o.cfg.API.Timeout, o.logger.Named("source"))
}

func (o *options) sourceName() string {
	if o.cfg.API.File != "" {
		return o.cfg.API.File
	}
	return o.cfg.API.Endpoint
}

func (o *options) runTUI(cmd *cobra.Command, _ []string) error {
	o.logger.Info("starting", zap.String("endpoint", o.cfg.API.Endpoint), zap.String("file", o.cfg.API.File))
	st, err := tui.Run(tui.Params{
		Context: cmd.Context(),
		Source:  o.source(),
		Logger:  o.logger.Named("tui"),
	})
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if st != nil {
		o.logger.Info("session ended", zap.Int("lists", st.Len()), zap.Stringer("mode", st.Mode()))
	}
	return nil
}
