package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recruitcrm/internal/launch"
)

// OpenOptions holds flags for the open command.
type OpenOptions struct {
	*RootOptions
	Mailto  bool
	Subject string

	// Launcher allows overriding the OS-opener (for testing).
	// If nil, the platform launcher is used.
	Launcher *launch.Launcher
}

// NewOpenCommand creates the open command.
func NewOpenCommand(rootOpts *RootOptions) *cobra.Command {
	return newOpenCommand(rootOpts, nil)
}

func newOpenCommand(rootOpts *RootOptions, launcher *launch.Launcher) *cobra.Command {
	opts := &OpenOptions{RootOptions: rootOpts, Launcher: launcher}

	cmd := &cobra.Command{
		Use:   "open tg|email|resume <id>",
		Short: "Open a contact's Telegram chat, email compose, or resume",
		Long: `Open one of a contact's channels with the platform opener.

tg      opens the Telegram app for the stored handle, falling back to
        the t.me web page when the app is not installed.
email   opens a Gmail compose window (or a mailto: link with --mailto)
        and copies the address to the clipboard.
resume  opens the stored resume file with its default application.

Example:
  recruitcrm open tg 7
  recruitcrm open email 7 --mailto --subject "Following up"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Mailto, "mailto", false, "use a mailto: link instead of Gmail compose")
	cmd.Flags().StringVar(&opts.Subject, "subject", launch.DefaultSubject, "subject line for email compose")

	return cmd
}

type openResult struct {
	Target string `json:"target"`
	ID     int64  `json:"id"`
	Opened string `json:"opened"`
	Copied bool   `json:"copied,omitempty"`
}

func runOpen(opts *OpenOptions, target, idArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	switch target {
	case "tg", "email", "resume":
	default:
		return failWith(formatter, codeCommand,
			fmt.Sprintf("unknown open target %q: must be tg, email or resume", target))
	}

	id, err := parseID(idArg)
	if err != nil {
		return fail(formatter, err)
	}

	launcher := opts.Launcher
	if launcher == nil {
		launcher = launch.New()
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

	switch target {
	case "tg":
		if c.TelegramHandle() == "" {
			return failWith(formatter, codeValidation,
				fmt.Sprintf("contact %d has no telegram handle", id))
		}
		url, err := launcher.OpenTelegram(c.Telegram)
		if err != nil {
			env.log.Error("open telegram failed", zap.Int64("id", id), zap.Error(err))
			return failWith(formatter, codeOpen, err.Error())
		}
		env.log.Info("opened telegram", zap.Int64("id", id), zap.String("url", url))
		return reportOpened(formatter, cmd, openResult{Target: target, ID: id, Opened: url})

	case "email":
		if c.Email == "" {
			return failWith(formatter, codeValidation,
				fmt.Sprintf("contact %d has no email address", id))
		}
		copied := true
		if err := launcher.CopyToClipboard(c.Email); err != nil {
			copied = false
			env.log.Warn("clipboard copy failed", zap.Int64("id", id), zap.Error(err))
			fmt.Fprintf(formatter.GetErrWriter(), "warning: clipboard copy failed: %v\n", err)
		}
		url := launch.GmailComposeURL(c.Email, opts.Subject)
		if opts.Mailto {
			url = launch.MailtoURL(c.Email, opts.Subject)
		}
		if err := launcher.Open(url); err != nil {
			env.log.Error("open email compose failed", zap.Int64("id", id), zap.Error(err))
			return failWith(formatter, codeOpen, err.Error())
		}
		env.log.Info("opened email compose", zap.Int64("id", id), zap.String("url", url))
		return reportOpened(formatter, cmd, openResult{Target: target, ID: id, Opened: url, Copied: copied})

	default: // resume
		if c.ResumePath == "" {
			return failWith(formatter, codeValidation,
				fmt.Sprintf("contact %d has no resume path", id))
		}
		if _, err := os.Stat(c.ResumePath); err != nil {
			return failWith(formatter, codeOpen, fmt.Sprintf("resume file: %v", err))
		}
		if err := launcher.Open(c.ResumePath); err != nil {
			env.log.Error("open resume failed", zap.Int64("id", id), zap.Error(err))
			return failWith(formatter, codeOpen, err.Error())
		}
		env.log.Info("opened resume", zap.Int64("id", id), zap.String("path", c.ResumePath))
		return reportOpened(formatter, cmd, openResult{Target: target, ID: id, Opened: c.ResumePath})
	}
}

func reportOpened(formatter *OutputFormatter, cmd *cobra.Command, result openResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", result.Opened)
	if result.Target == "email" && result.Copied {
		fmt.Fprintln(cmd.OutOrStdout(), "Address copied to clipboard")
	}
	return nil
}
