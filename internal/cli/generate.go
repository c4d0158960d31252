package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmccarthy619/file-name-generator/internal/export"
	"github.com/dmccarthy619/file-name-generator/internal/form"
	"github.com/dmccarthy619/file-name-generator/internal/naming"
	"github.com/dmccarthy619/file-name-generator/internal/tui"
)

// requestFlags binds the name fields shared by generate, rename and file.
type requestFlags struct {
	person         string
	description    string
	dateSubmitted  string
	additionalInfo string
	dateOfDocument string
}

func (f *requestFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.person, "person", "p", "", "person, e.g. Ast1 or Kind2 (default from config)")
	flags.StringVarP(&f.description, "description", "d", "", "description (Beschreibung)")
	flags.StringVarP(&f.dateSubmitted, "submitted", "s", "", "submitted date YYYY.MM.DD (default today)")
	flags.StringVarP(&f.additionalInfo, "info", "i", "", "additional info: letters, digits and spaces")
	flags.StringVarP(&f.dateOfDocument, "document-date", "D", "", "date of the document YYYY.MM.DD")
}

func (a *App) request(f requestFlags, cmd *cobra.Command) naming.Request {
	req := naming.Request{
		Person:         f.person,
		Description:    f.description,
		DateSubmitted:  f.dateSubmitted,
		AdditionalInfo: f.additionalInfo,
		DateOfDocument: f.dateOfDocument,
	}
	if !cmd.Flags().Changed("person") {
		req.Person = a.cfg.DefaultPerson
	}
	if !cmd.Flags().Changed("submitted") {
		req.DateSubmitted = naming.DisplayDate(a.now())
	}
	return req
}

// checkPerson rejects a person the taxonomy does not list, the same choice
// the form offers.
func (a *App) checkPerson(req naming.Request) error {
	store, _, err := a.loadStore()
	if err != nil {
		return err
	}
	return form.Check(store, form.State{Person: req.Person})
}

func (a *App) generateCommand() *cobra.Command {
	var (
		fields requestFlags
		copyIt bool
		save   bool
		out    string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a file name from flags",
		Example: `  dateiname generate -p Ast1 -d "National Pass" -s 2024.01.15
  dateiname generate -p Ast1 -d "National Pass" -i "Copy 2" -D 2023.12.01 --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := a.request(fields, cmd)
			if err := a.checkPerson(req); err != nil {
				return failed(err)
			}
			res := naming.Format(req)
			if !res.OK() {
				return failed(res.Err)
			}
			nameStyle.Fprintln(a.stdout, res.Name)

			if copyIt {
				if err := export.Copy(res); err != nil {
					return failed(err)
				}
				mutedStyle.Fprintln(a.stderr, "copied to clipboard")
			}
			if save || out != "" {
				var (
					path string
					err  error
				)
				if out != "" {
					path, err = export.WriteFileAs(out, res)
				} else {
					path, err = export.WriteFile(a.cfg.ExportDir, res)
				}
				if err != nil {
					return failed(err)
				}
				mutedStyle.Fprintf(a.stderr, "saved to %s\n", path)
			}
			return nil
		},
	}
	fields.bind(cmd)
	cmd.Flags().BoolVar(&copyIt, "copy", false, "copy the name to the clipboard")
	cmd.Flags().BoolVar(&save, "save", false, "write the name to "+export.DefaultFileName+" in the export dir")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the name to this file")
	return cmd
}

func (a *App) formCommand() *cobra.Command {
	var exportDir string
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Open the interactive form (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm(cmd.Context(), exportDir)
		},
	}
	cmd.Flags().StringVar(&exportDir, "export-dir", "", "directory for "+export.DefaultFileName+" (default from config)")
	return cmd
}

func (a *App) runForm(ctx context.Context, exportDir string) error {
	store, _, err := a.loadStore()
	if err != nil {
		return failed(err)
	}
	if exportDir == "" {
		exportDir = a.cfg.ExportDir
	}

	f := form.New(store, form.NewState(a.now()))
	if a.cfg.DefaultPerson != "" {
		if err := f.SelectPerson(a.cfg.DefaultPerson); err != nil {
			warnStyle.Fprintf(a.stderr, "default_person ignored: %v\n", err)
		}
	}

	final, err := tui.Run(ctx, tui.New(f, exportDir))
	if err != nil && !errors.Is(err, context.Canceled) {
		return failed(err)
	}
	if res, ok := final.Result(); ok && res.OK() {
		nameStyle.Fprintln(a.stdout, res.Name)
	}
	return nil
}
