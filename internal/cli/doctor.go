package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmccarthy619/file-name-generator/internal/config"
	"github.com/dmccarthy619/file-name-generator/internal/taxonomy"
)

func (a *App) doctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show runtime diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			headerStyle.Fprintln(a.stdout, "dateiname diagnostics")
			if cwd, err := os.Getwd(); err == nil {
				fmt.Fprintf(a.stdout, "cwd: %s\n", cwd)
			}
			if exePath, err := os.Executable(); err == nil {
				fmt.Fprintf(a.stdout, "executable: %s\n", exePath)
			}
			if path, err := config.Path(); err == nil {
				fmt.Fprintf(a.stdout, "config: %s\n", path)
			}

			configured := strings.TrimSpace(os.Getenv(taxonomy.TaxonomyPathEnvVar))
			if configured == "" {
				fmt.Fprintf(a.stdout, "%s: (not set)\n", taxonomy.TaxonomyPathEnvVar)
			} else {
				fmt.Fprintf(a.stdout, "%s: %s\n", taxonomy.TaxonomyPathEnvVar, configured)
			}

			store, source, err := a.loadStore()
			if err != nil {
				errorStyle.Fprintf(a.stdout, "taxonomy: unusable (%v)\n", err)
				return &exitError{code: 1, err: err}
			}
			successStyle.Fprintf(a.stdout, "taxonomy: %s (%d process categories)\n", source, len(store.ListProcessCategories()))
			return nil
		},
	}
}

func (a *App) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [taxonomy.yaml]",
		Short: "Check a taxonomy file for integrity problems",
		Long: `Checks that every document category has descriptions, that every
description list ends with ` + taxonomy.MiscSentinel + ` and that no key is listed twice.
Without an argument the active taxonomy is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				resolved, err := a.resolveTaxonomyPath()
				if err != nil {
					return failed(err)
				}
				path = resolved
			}

			t, err := taxonomy.LoadOrDefault(path)
			if err != nil {
				return failed(err)
			}
			if err := t.Validate(); err != nil {
				return failed(err)
			}
			if path == "" {
				path = "compiled-in taxonomy"
			}
			documents := 0
			for _, p := range t.Processes {
				documents += len(p.Documents)
			}
			successStyle.Fprintf(a.stdout, "%s: ok (%d process categories, %d document categories)\n", pathStyle.Sprint(path), len(t.Processes), documents)
			return nil
		},
	}
}

func (a *App) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write the default configuration if none exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.InitDefault()
				if err != nil {
					return failed(fmt.Errorf("failed to write config: %w", err))
				}
				successStyle.Fprintf(a.stdout, "config: %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := yaml.Marshal(a.cfg)
				if err != nil {
					return failed(err)
				}
				_, err = a.stdout.Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "set-person <person>",
			Short: "Set the person preselected in the form and used by generate",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := a.cfg
				cfg.DefaultPerson = strings.TrimSpace(args[0])
				path, err := config.Save(cfg)
				if err != nil {
					return failed(fmt.Errorf("failed to save config: %w", err))
				}
				successStyle.Fprintf(a.stdout, "default person set to '%s' in %s\n", cfg.DefaultPerson, path)
				return nil
			},
		},
	)
	return cmd
}
