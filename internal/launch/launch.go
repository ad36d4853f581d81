// Package launch hands URLs and file paths to the operating system's
// default handlers: the Telegram client, the mail client, the viewer
// registered for a resume file. It also builds the URLs those handlers
// receive and offers a best-effort clipboard copy.
//
// Nothing here touches storage; failures are reported to the caller and
// are never fatal to the record being worked on.
package launch

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// DefaultSubject is the prefilled subject line for vacancy follow-ups.
const DefaultSubject = "Question about the vacancy"

// Runner executes external commands. The default implementation shells
// out; tests substitute a recorder.
type Runner interface {
	Run(name string, arg ...string) error
	RunWithInput(input string, name string, arg ...string) error
}

type execRunner struct{}

func (execRunner) Run(name string, arg ...string) error {
	return exec.Command(name, arg...).Run()
}

func (execRunner) RunWithInput(input string, name string, arg ...string) error {
	cmd := exec.Command(name, arg...)
	cmd.Stdin = strings.NewReader(input)
	return cmd.Run()
}

// Launcher dispatches targets to the platform's default handlers.
type Launcher struct {
	goos   string
	runner Runner
}

// New returns a Launcher for the platform the process is running on.
func New() *Launcher {
	return &Launcher{goos: runtime.GOOS, runner: execRunner{}}
}

// NewWithRunner returns a Launcher with a caller-supplied platform name
// and runner. Intended for tests and callers that observe launches.
func NewWithRunner(goos string, r Runner) *Launcher {
	return &Launcher{goos: goos, runner: r}
}

// Open hands a URL or file path to the platform's default handler.
func (l *Launcher) Open(target string) error {
	name, args := l.openCommand(target)
	if err := l.runner.Run(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// OpenTelegram opens a chat with the handle, preferring the native client
// deep link and falling back to the web client when the deep link has no
// handler. Returns the URL that was actually opened.
func (l *Launcher) OpenTelegram(handle string) (string, error) {
	handle = strings.TrimLeft(strings.TrimSpace(handle), "@")
	if handle == "" {
		return "", errors.New("no telegram handle")
	}

	app, web := TelegramURLs(handle)
	if err := l.Open(app); err == nil {
		return app, nil
	}
	if err := l.Open(web); err != nil {
		return "", err
	}
	return web, nil
}

// CopyToClipboard puts text on the system clipboard, trying each known
// clipboard tool for the platform in turn. Callers treat a failure as a
// warning; the primary action has already happened.
func (l *Launcher) CopyToClipboard(text string) error {
	var lastErr error
	for _, cmd := range l.clipboardCommands() {
		if err := l.runner.RunWithInput(text, cmd[0], cmd[1:]...); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("copy to clipboard: %w", lastErr)
}

// TelegramURLs returns the native deep link and the web fallback for a
// bare handle (no leading '@').
func TelegramURLs(handle string) (app, web string) {
	app = "tg://resolve?domain=" + url.QueryEscape(handle)
	web = "https://t.me/" + url.PathEscape(handle)
	return app, web
}

// GmailComposeURL builds a Gmail compose link prefilled with the address
// and subject.
func GmailComposeURL(to, subject string) string {
	q := url.Values{}
	q.Set("view", "cm")
	q.Set("fs", "1")
	q.Set("to", to)
	q.Set("su", subject)
	return "https://mail.google.com/mail/?" + q.Encode()
}

// MailtoURL builds a mailto link with the subject escaped. Spaces become
// %20, not '+'; mail clients do not decode the form encoding.
func MailtoURL(to, subject string) string {
	return "mailto:" + to + "?subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
}

// openCommand returns the platform command that dispatches a target to
// its default handler.
func (l *Launcher) openCommand(target string) (string, []string) {
	switch l.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// clipboardCommands returns the clipboard writers to try, in order.
func (l *Launcher) clipboardCommands() [][]string {
	switch l.goos {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "windows":
		return [][]string{{"clip"}}
	default:
		return [][]string{
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}
}
