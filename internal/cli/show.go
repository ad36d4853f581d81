package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"recruitcrm/internal/contact"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one contact in full",
		Long: `Show every stored field of a contact, including the full comments.

Example:
  recruitcrm show 7`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, idArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	id, err := parseID(idArg)
	if err != nil {
		return fail(formatter, err)
	}

	env, cleanup, err := openEnv(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := env.st.Get(cmd.Context(), id)
	if err != nil {
		return fail(formatter, err)
	}

	if opts.Format == "json" {
		return formatter.Success(c)
	}
	renderContact(cmd.OutOrStdout(), c)
	return nil
}

// renderContact prints one record as a labeled block, multi-line
// comments indented underneath.
func renderContact(w io.Writer, c contact.Contact) {
	fmt.Fprintf(w, "Contact %d\n", c.ID)
	fmt.Fprintf(w, "  Company:      %s\n", c.Company)
	fmt.Fprintf(w, "  Full Name:    %s\n", c.FullName)
	fmt.Fprintf(w, "  Telegram:     %s\n", c.Telegram)
	fmt.Fprintf(w, "  Phone:        %s\n", c.Phone)
	fmt.Fprintf(w, "  Position:     %s\n", c.Position)
	fmt.Fprintf(w, "  Email:        %s\n", c.Email)
	fmt.Fprintf(w, "  Status:       %s\n", c.Status)
	fmt.Fprintf(w, "  Last Contact: %s\n", c.LastContact)
	fmt.Fprintf(w, "  Next Step:    %s\n", c.NextStep)
	fmt.Fprintf(w, "  Resume:       %s\n", c.ResumePath)
	fmt.Fprintf(w, "  Created:      %s\n", c.CreatedAt)
	if c.Comments != "" {
		fmt.Fprintln(w, "  Comments:")
		for _, line := range strings.Split(c.Comments, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}
