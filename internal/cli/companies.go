package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CompaniesOptions holds flags for the companies command.
type CompaniesOptions struct {
	*RootOptions
	Locale string
}

// NewCompaniesCommand creates the companies command.
func NewCompaniesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompaniesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "List distinct companies",
		Long: `List every distinct company in the database.

The store returns companies in byte order; --locale re-sorts them with
the collation rules of a BCP 47 language tag for display.

Example:
  recruitcrm companies
  recruitcrm companies --locale ru`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompanies(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Locale, "locale", "", "BCP 47 tag to sort companies for display")

	return cmd
}

func runCompanies(opts *CompaniesOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var sorter *collate.Collator
	if opts.Locale != "" {
		tag, err := language.Parse(opts.Locale)
		if err != nil {
			return fail(formatter, fmt.Errorf("invalid locale %q: %w", opts.Locale, err))
		}
		sorter = collate.New(tag)
	}

	env, cleanup, err := openEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	companies, err := env.st.Companies(cmd.Context())
	if err != nil {
		return fail(formatter, err)
	}
	if sorter != nil {
		sorter.SortStrings(companies)
	}

	if opts.Format == "json" {
		return formatter.Success(companies)
	}
	if len(companies) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No companies found.")
		return nil
	}
	for _, company := range companies {
		fmt.Fprintln(cmd.OutOrStdout(), company)
	}
	return nil
}
