package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recruitcrm/internal/contact"
)

// RmOptions holds flags for the rm command.
type RmOptions struct {
	*RootOptions
	Yes bool
}

// NewRmCommand creates the rm command.
func NewRmCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RmOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a contact",
		Long: `Delete a contact by id.

Asks for confirmation unless --yes is given. Deleting an id that does
not exist is not an error.

Example:
  recruitcrm rm 7 --yes`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "delete without asking")

	return cmd
}

type rmResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

func runRm(opts *RmOptions, idArg string, cmd *cobra.Command) error {
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

	env, cleanup, err := openEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := env.st.Get(cmd.Context(), id)
	if contact.IsNotFound(err) {
		// Deleting an absent record is a no-op, not a failure.
		if opts.Format == "json" {
			return formatter.Success(rmResult{ID: id, Deleted: false})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Contact %d not found; nothing to delete\n", id)
		return nil
	}
	if err != nil {
		return fail(formatter, err)
	}

	if !opts.Yes {
		question := fmt.Sprintf("Delete contact %d (%s, %s)?", id, c.FullName, c.Company)
		if !confirm(cmd, formatter, question) {
			if opts.Format == "json" {
				return formatter.Success(rmResult{ID: id, Deleted: false})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
	}

	if err := env.st.Delete(cmd.Context(), id); err != nil {
		env.log.Error("delete contact failed", zap.Int64("id", id), zap.Error(err))
		return fail(formatter, err)
	}
	env.log.Info("contact deleted",
		zap.Int64("id", id),
		zap.String("company", c.Company),
		zap.String("full_name", c.FullName))

	if opts.Format == "json" {
		return formatter.Success(rmResult{ID: id, Deleted: true})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted contact %d (%s, %s)\n", id, c.FullName, c.Company)
	return nil
}

// confirm asks a yes/no question on the diagnostic writer and reads the
// answer from the command's input. Anything but an explicit yes is no.
func confirm(cmd *cobra.Command, formatter *OutputFormatter, question string) bool {
	fmt.Fprintf(formatter.GetErrWriter(), "%s [y/N]: ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
