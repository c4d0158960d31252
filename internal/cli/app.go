// Package cli wires the taxonomy, the formatter and the presentation layers
// into the dateiname command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dmccarthy619/file-name-generator/internal/config"
	"github.com/dmccarthy619/file-name-generator/internal/logging"
	"github.com/dmccarthy619/file-name-generator/internal/taxonomy"
)

type App struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	cfg          config.Config
	logger       *zap.Logger
	taxonomyPath string
	verbose      bool
}

func NewApp() *App {
	return &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
		logger: zap.NewNop(),
	}
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// failed marks err as a runtime failure (exit code 1). Errors that reach Run
// unmarked are usage errors from cobra (exit code 2).
func failed(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: 1, err: err}
}

// Run executes the command line and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		errorStyle.Fprintln(a.stderr, ee.err.Error())
		return ee.code
	}
	errorStyle.Fprintln(a.stderr, err.Error())
	mutedStyle.Fprintln(a.stderr, "Run 'dateiname --help' for usage.")
	return 2
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dateiname",
		Short: "Dateiname Generator: standardized file names for case files",
		Long: `dateiname assembles standardized file names from a process category,
document category, description, person and dates:

  Person_Beschreibung_JJJJMMTT[_Zusatz][_von-JJJJMMTT]

Run without arguments to open the interactive form.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm(cmd.Context(), "")
		},
	}
	root.PersistentFlags().StringVar(&a.taxonomyPath, "taxonomy", "", "alternate taxonomy YAML file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.formCommand(),
		a.generateCommand(),
		a.listCommand(),
		a.renameCommand(),
		a.fileCommand(),
		a.serveCommand(),
		a.validateCommand(),
		a.doctorCommand(),
		a.configCommand(),
	)
	return root
}

func (a *App) setup() error {
	cfg, err := config.LoadOrDefault()
	a.cfg = cfg

	logCfg := cfg.Log
	if a.verbose {
		logCfg.Level = zapcore.DebugLevel.String()
	}
	logger, buildErr := logging.New(logCfg)
	if buildErr != nil {
		warnStyle.Fprintf(a.stderr, "log settings ignored: %v\n", buildErr)
		logger = logging.NewOrNop(logging.DefaultConfig())
	}
	a.logger = logger

	if err != nil {
		a.logger.Warn("config unreadable, using defaults", zap.Error(err))
		warnStyle.Fprintf(a.stderr, "config unreadable, using defaults: %v\n", err)
	}
	return nil
}

// loadStore resolves the taxonomy in order: --taxonomy flag, config file,
// DATEINAME_TAXONOMY / assets lookup, compiled-in default.
func (a *App) loadStore() (*taxonomy.Store, string, error) {
	path, err := a.resolveTaxonomyPath()
	if err != nil {
		return nil, "", err
	}
	t, err := taxonomy.LoadOrDefault(path)
	if err != nil {
		return nil, "", fmt.Errorf("load taxonomy: %w", err)
	}
	source := path
	if source == "" {
		source = "compiled-in"
	}
	a.logger.Debug("taxonomy loaded", zap.String("source", source), zap.Int("processes", len(t.Processes)))
	return taxonomy.NewStore(t), source, nil
}

func (a *App) resolveTaxonomyPath() (string, error) {
	if path := strings.TrimSpace(a.taxonomyPath); path != "" {
		return path, nil
	}
	if path := strings.TrimSpace(a.cfg.TaxonomyPath); path != "" {
		return path, nil
	}
	return taxonomy.ResolvePath(taxonomy.DefaultTaxonomyPath)
}
