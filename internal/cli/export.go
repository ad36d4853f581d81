package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recruitcrm/internal/export"
	"recruitcrm/internal/store"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Out     string
	Company string
	Status  string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export contacts to a spreadsheet",
		Long: `Export a filtered contact listing to an .xlsx workbook.

Rows appear in list order and carry every stored field, comments in
full.

Example:
  recruitcrm export --out contacts.xlsx
  recruitcrm export --out acme.xlsx --company Acme`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "path of the workbook to write (required)")
	cmd.Flags().StringVar(&opts.Company, "company", "", "only contacts at this company")
	cmd.Flags().StringVar(&opts.Status, "status", "", "only contacts with this status")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

type exportResult struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
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

	if err := export.Write(opts.Out, contacts); err != nil {
		env.log.Error("export failed", zap.String("path", opts.Out), zap.Error(err))
		return failWith(formatter, codeCommand, fmt.Sprintf("write workbook: %v", err))
	}
	env.log.Info("exported contacts", zap.String("path", opts.Out), zap.Int("count", len(contacts)))

	if opts.Format == "json" {
		return formatter.Success(exportResult{Path: opts.Out, Count: len(contacts)})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contact(s) to %s\n", len(contacts), opts.Out)
	return nil
}
