package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recruitcrm/internal/contact"
	"recruitcrm/internal/datecal"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Contact contact.Contact
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long: `Add a contact to the database.

Company and full name are required; everything else is optional.
Dates use the YYYY-MM-DD layout (see the calendar command).

Example:
  recruitcrm add --company "Acme" --full-name "Jane Doe" --telegram @jane
  recruitcrm add --company "Acme" --full-name "Jane Doe" --status interview --next-step 2026-09-01`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	addContactFlags(cmd, &opts.Contact)

	return cmd
}

// addContactFlags registers one flag per contact field; add and edit
// share the set.
func addContactFlags(cmd *cobra.Command, c *contact.Contact) {
	cmd.Flags().StringVar(&c.Company, "company", "", "company name (required)")
	cmd.Flags().StringVar(&c.FullName, "full-name", "", "contact's full name (required)")
	cmd.Flags().StringVar(&c.Telegram, "telegram", "", "telegram handle, with or without @")
	cmd.Flags().StringVar(&c.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&c.Position, "position", "", "position under discussion")
	cmd.Flags().StringVar(&c.Email, "email", "", "email address")
	cmd.Flags().StringVar(&c.Comments, "comments", "", "free-form notes")
	cmd.Flags().StringVar(&c.ResumePath, "resume", "", "path to the resume file sent")
	cmd.Flags().StringVar(&c.Status, "status", "", fmt.Sprintf("status, one of %v (default %q)", contact.StatusOptions, contact.DefaultStatus))
	cmd.Flags().StringVar(&c.LastContact, "last-contact", "", "date of the last contact, YYYY-MM-DD")
	cmd.Flags().StringVar(&c.NextStep, "next-step", "", "date of the next step, YYYY-MM-DD")
}

// checkContactFlags validates the flag values the date picker and
// status dropdown used to guarantee.
func checkContactFlags(f *OutputFormatter, c contact.Contact) error {
	if c.Status != "" && !contact.ValidStatus(c.Status) {
		return failWith(f, codeValidation,
			fmt.Sprintf("invalid status %q: must be one of %v", c.Status, contact.StatusOptions))
	}
	for _, date := range []struct {
		flag  string
		value string
	}{
		{"last-contact", c.LastContact},
		{"next-step", c.NextStep},
	} {
		if date.value == "" {
			continue
		}
		if _, err := datecal.ParseDate(date.value); err != nil {
			return failWith(f, codeValidation, fmt.Sprintf("invalid --%s: %v", date.flag, err))
		}
	}
	return nil
}

type addResult struct {
	ID int64 `json:"id"`
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if err := checkContactFlags(formatter, opts.Contact); err != nil {
		return err
	}

	env, cleanup, err := openEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := env.st.Insert(cmd.Context(), opts.Contact)
	if err != nil {
		env.log.Error("add contact failed", zap.Error(err))
		return fail(formatter, err)
	}
	env.log.Info("contact added",
		zap.Int64("id", id),
		zap.String("company", opts.Contact.Company),
		zap.String("full_name", opts.Contact.FullName))

	if opts.Format == "json" {
		return formatter.Success(addResult{ID: id})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added contact %d\n", id)
	return nil
}
