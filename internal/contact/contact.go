package contact

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Pipeline statuses, in order. The set is fixed; a blank status is read as
// DefaultStatus everywhere.
const (
	StatusInitialContact = "initial contact"
	StatusAwaitingReply  = "awaiting reply"
	StatusInterview      = "interview"
	StatusOffer          = "offer"
	StatusRejected       = "rejected"
)

// DefaultStatus is stored in place of a blank status.
const DefaultStatus = StatusInitialContact

// StatusOptions lists the fixed status set in pipeline order.
// The first entry is the default.
var StatusOptions = []string{
	StatusInitialContact,
	StatusAwaitingReply,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// CommentPreviewLimit is the rune budget for comment previews in table views.
const CommentPreviewLimit = 120

// Contact is one tracked recruiter at a company.
//
// Company and FullName are required (non-empty after trimming); everything
// else is optional free text. LastContact and NextStep hold "YYYY-MM-DD"
// dates produced by the calendar picker. ID and CreatedAt are assigned by
// storage on insert and never change.
type Contact struct {
	ID          int64  `json:"id"`
	Company     string `json:"company"`
	FullName    string `json:"full_name"`
	Telegram    string `json:"telegram"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Email       string `json:"email"`
	Comments    string `json:"comments"`
	ResumePath  string `json:"resume_path"`
	Status      string `json:"status"`
	LastContact string `json:"last_contact"`
	NextStep    string `json:"next_step"`
	CreatedAt   string `json:"created_at"`
}

// Normalized returns a copy with every string field whitespace-trimmed and
// NFC-normalized, and a blank status replaced by DefaultStatus. This runs
// once at the write boundary: the store applies it to every insert and
// update, so callers may pass raw form input.
func (c Contact) Normalized() Contact {
	out := Contact{
		ID:          c.ID,
		Company:     normString(c.Company),
		FullName:    normString(c.FullName),
		Telegram:    normString(c.Telegram),
		Phone:       normString(c.Phone),
		Position:    normString(c.Position),
		Email:       normString(c.Email),
		Comments:    normString(c.Comments),
		ResumePath:  normString(c.ResumePath),
		Status:      normString(c.Status),
		LastContact: normString(c.LastContact),
		NextStep:    normString(c.NextStep),
		CreatedAt:   c.CreatedAt,
	}
	if out.Status == "" {
		out.Status = DefaultStatus
	}
	return out
}

// Validate reports the first missing required field as a *ValidationError.
// It expects normalized input; the store normalizes before validating.
func (c Contact) Validate() error {
	if c.Company == "" {
		return &ValidationError{Field: "company"}
	}
	if c.FullName == "" {
		return &ValidationError{Field: "full_name"}
	}
	return nil
}

// TelegramHandle returns the messaging handle with any leading '@' stripped,
// ready for URL construction. Empty when no handle is stored.
func (c Contact) TelegramHandle() string {
	return strings.TrimLeft(strings.TrimSpace(c.Telegram), "@")
}

// CommentPreview truncates the comments to CommentPreviewLimit runes with a
// "..." suffix, for table rendering. Full comments stay in storage.
func (c Contact) CommentPreview() string {
	if c.Comments == "" {
		return ""
	}
	runes := []rune(c.Comments)
	if len(runes) <= CommentPreviewLimit {
		return c.Comments
	}
	return string(runes[:CommentPreviewLimit]) + "..."
}

// ValidStatus reports whether s is one of the fixed status values.
// The empty string is not valid input; it is replaced by DefaultStatus
// during normalization instead.
func ValidStatus(s string) bool {
	for _, opt := range StatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}

func normString(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
