package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recruitcrm/internal/contact"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Contact contact.Contact
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a contact",
		Long: `Edit a contact by id.

Loads the current record, applies the provided flags over it and writes
the result back as a full replace. Flags that are not given keep their
stored values.

Example:
  recruitcrm edit 7 --status "awaiting reply" --next-step 2026-09-01`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	addContactFlags(cmd, &opts.Contact)

	return cmd
}

type editResult struct {
	ID int64 `json:"id"`
}

func runEdit(opts *EditOptions, idArg string, cmd *cobra.Command) error {
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
	if err != nil {
		return fail(formatter, err)
	}

	applyContactFlags(cmd, &c, opts.Contact)
	if err := checkContactFlags(formatter, c); err != nil {
		return err
	}

	if err := env.st.Update(cmd.Context(), c); err != nil {
		env.log.Error("edit contact failed", zap.Int64("id", id), zap.Error(err))
		return fail(formatter, err)
	}
	env.log.Info("contact updated", zap.Int64("id", id))

	if opts.Format == "json" {
		return formatter.Success(editResult{ID: id})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated contact %d\n", id)
	return nil
}

// applyContactFlags copies the flag values that were explicitly set on
// the command line onto dst, leaving the rest of the record as stored.
func applyContactFlags(cmd *cobra.Command, dst *contact.Contact, src contact.Contact) {
	fields := []struct {
		name string
		dst  *string
		src  string
	}{
		{"company", &dst.Company, src.Company},
		{"full-name", &dst.FullName, src.FullName},
		{"telegram", &dst.Telegram, src.Telegram},
		{"phone", &dst.Phone, src.Phone},
		{"position", &dst.Position, src.Position},
		{"email", &dst.Email, src.Email},
		{"comments", &dst.Comments, src.Comments},
		{"resume", &dst.ResumePath, src.ResumePath},
		{"status", &dst.Status, src.Status},
		{"last-contact", &dst.LastContact, src.LastContact},
		{"next-step", &dst.NextStep, src.NextStep},
	}
	for _, f := range fields {
		if cmd.Flags().Changed(f.name) {
			*f.dst = f.src
		}
	}
}
