package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"recruitcrm/internal/contact"
	"recruitcrm/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Company string
	Status  string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long: `List contacts as a table, soonest next step first.

Contacts with a next step date come first in date order; the rest follow,
newest first. Both filters are exact matches; "all" matches everything.

Example:
  recruitcrm list
  recruitcrm list --company Acme --status interview`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Company, "company", "", "only contacts at this company")
	cmd.Flags().StringVar(&opts.Status, "status", "", "only contacts with this status")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	env, cleanup, err := openEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	contacts, err := env.st.List(cmd.Context(), store.Filter{
		Company: opts.Company,
		Status:  opts.Status,
	})
	if err != nil {
		return fail(formatter, err)
	}

	if opts.Format == "json" {
		return formatter.Success(contacts)
	}
	renderTable(cmd.OutOrStdout(), contacts)
	return nil
}

// listHeader is the column order of the list table.
var listHeader = []string{
	"ID", "COMPANY", "FULL NAME", "TELEGRAM", "PHONE", "POSITION",
	"EMAIL", "STATUS", "LAST CONTACT", "NEXT STEP", "COMMENTS",
}

// renderTable prints the list table. Comments are preview-truncated;
// show and export carry the full text.
func renderTable(w io.Writer, contacts []contact.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(w, "No contacts found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(listHeader, "\t"))
	for _, c := range contacts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Company, c.FullName, c.Telegram, c.Phone, c.Position,
			c.Email, c.Status, c.LastContact, c.NextStep, c.CommentPreview())
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d contact(s)\n", len(contacts))
}
