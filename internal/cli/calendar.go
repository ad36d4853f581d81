package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"recruitcrm/internal/datecal"
)

// NewCalendarCommand creates the calendar command.
func NewCalendarCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Print a month grid for picking dates",
		Long: `Print a Monday-first month grid.

Useful for picking --last-contact and --next-step values. Defaults to
the current month.

Example:
  recruitcrm calendar
  recruitcrm calendar 2026-09`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			monthArg := ""
			if len(args) == 1 {
				monthArg = args[0]
			}
			return runCalendar(rootOpts, monthArg, cmd)
		},
	}

	return cmd
}

type calendarResult struct {
	Month string  `json:"month"`
	Weeks [][]int `json:"weeks"`
}

func runCalendar(opts *RootOptions, monthArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	now := time.Now()
	year, month := now.Year(), now.Month()
	if monthArg != "" {
		var err error
		year, month, err = datecal.ParseMonth(monthArg)
		if err != nil {
			return fail(formatter, err)
		}
	}

	if opts.Format == "json" {
		return formatter.Success(calendarResult{
			Month: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(datecal.MonthLayout),
			Weeks: datecal.MonthGrid(year, month),
		})
	}
	renderCalendar(cmd.OutOrStdout(), year, month)
	return nil
}

// calendarWidth is the rendered grid width: seven two-digit cells and
// six separators.
const calendarWidth = 20

// renderCalendar prints a Monday-first month grid: centered title,
// Mo..Su header, one line per week, blanks outside the month.
func renderCalendar(w io.Writer, year int, month time.Month) {
	title := fmt.Sprintf("%s %d", month, year)
	pad := (calendarWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), title)
	fmt.Fprintln(w, "Mo Tu We Th Fr Sa Su")

	for _, week := range datecal.MonthGrid(year, month) {
		cells := make([]string, len(week))
		for i, day := range week {
			if day == 0 {
				cells[i] = "  "
			} else {
				cells[i] = fmt.Sprintf("%2d", day)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}
