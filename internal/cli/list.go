package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List taxonomy entries",
		Long: `Lists the selectable values level by level. Unknown keys print nothing,
the same as an empty dropdown.`,
	}

	printList := func(items []string) {
		if len(items) == 0 {
			mutedStyle.Fprintln(a.stderr, "(none)")
			return
		}
		for _, item := range items {
			fmt.Fprintln(a.stdout, item)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "processes",
			Short: "List process categories (Vorgang)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, _, err := a.loadStore()
				if err != nil {
					return failed(err)
				}
				printList(store.ListProcessCategories())
				return nil
			},
		},
		&cobra.Command{
			Use:   "documents <process>",
			Short: "List document categories of a process (Dokument)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, _, err := a.loadStore()
				if err != nil {
					return failed(err)
				}
				printList(store.ListDocumentCategories(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "descriptions <process> <document>",
			Short: "List descriptions of a document category (Beschreibung)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, _, err := a.loadStore()
				if err != nil {
					return failed(err)
				}
				printList(store.ListDescriptions(args[0], args[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "persons",
			Short: "List selectable persons",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, _, err := a.loadStore()
				if err != nil {
					return failed(err)
				}
				printList(store.ListPersons())
				return nil
			},
		},
		&cobra.Command{
			Use:   "tree",
			Short: "Print the whole taxonomy",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, _, err := a.loadStore()
				if err != nil {
					return failed(err)
				}
				for _, process := range store.ListProcessCategories() {
					headerStyle.Fprintln(a.stdout, process)
					for _, document := range store.ListDocumentCategories(process) {
						fmt.Fprintf(a.stdout, "  %s\n", document)
						for _, description := range store.ListDescriptions(process, document) {
							mutedStyle.Fprintf(a.stdout, "    - %s\n", description)
						}
					}
				}
				return nil
			},
		},
	)
	return cmd
}
