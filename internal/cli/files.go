package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmccarthy619/file-name-generator/internal/form"
	"github.com/dmccarthy619/file-name-generator/internal/ops"
)

var errRenameFailed = errors.New("some files could not be moved")

func (a *App) renameCommand() *cobra.Command {
	var (
		fields requestFlags
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:     "rename <file>",
		Short:   "Rename a file to its generated name, keeping the extension",
		Example: `  dateiname rename scan0001.pdf -p Ast1 -d "National Pass" -s 2024.01.15`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := a.request(fields, cmd)
			if err := a.checkPerson(req); err != nil {
				return failed(err)
			}
			res, err := ops.NewRenamePlanner().Plan(cmd.Context(), ops.RenameInput{
				Source:  args[0],
				Request: req,
				DryRun:  dryRun,
			})
			if err != nil {
				return failed(err)
			}
			res.Print(a.stdout)
			if res.Failed() {
				return &exitError{code: 1, err: errRenameFailed}
			}
			return nil
		},
	}
	fields.bind(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "only show what would happen")
	return cmd
}

func (a *App) fileCommand() *cobra.Command {
	var (
		fields   requestFlags
		process  string
		document string
		root     string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "file <file>",
		Short: "Rename a file and move it into <root>/<process>/<document>/",
		Example: `  dateiname file scan0001.pdf --process 001_Hauptverfahren --document AAA_Identitat \
    -p Ast1 -d National-Pass --root /akten/2024-017`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.loadStore()
			if err != nil {
				return failed(err)
			}
			req := a.request(fields, cmd)
			err = form.Check(store, form.State{
				Process:     process,
				Document:    document,
				Description: req.Description,
				Person:      req.Person,
			})
			if err != nil {
				return failed(err)
			}
			res, err := ops.NewFiler(store).Plan(cmd.Context(), ops.FileInput{
				Source:   args[0],
				Root:     root,
				Process:  process,
				Document: document,
				Request:  req,
				DryRun:   dryRun,
			})
			if err != nil {
				return failed(err)
			}
			res.Print(a.stdout)
			if res.Failed() {
				return &exitError{code: 1, err: errRenameFailed}
			}
			return nil
		},
	}
	fields.bind(cmd)
	cmd.Flags().StringVar(&process, "process", "", "process category (Vorgang)")
	cmd.Flags().StringVar(&document, "document", "", "document category (Dokument)")
	cmd.Flags().StringVar(&root, "root", ".", "case folder root")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "only show what would happen")
	_ = cmd.MarkFlagRequired("process")
	_ = cmd.MarkFlagRequired("document")
	return cmd
}
