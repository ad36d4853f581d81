package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitcrm/internal/contact"
)

func TestAdd_InsertsContact(t *testing.T) {
	dbPath := testDB(t)

	out, _, err := execute(t, "",
		"--db", dbPath, "add",
		"--company", "Acme",
		"--full-name", "Jane Doe",
		"--telegram", "@jane",
		"--phone", "+1 555 0100",
		"--position", "Go Developer",
		"--email", "jane@acme.test",
		"--comments", "met at конференция",
		"--resume", "/data/resumes/jane.pdf",
		"--status", "interview",
		"--last-contact", "2026-08-01",
		"--next-step", "2026-08-15",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Added contact 1")

	c := getContact(t, dbPath, 1)
	assert.Equal(t, "Acme", c.Company)
	assert.Equal(t, "Jane Doe", c.FullName)
	assert.Equal(t, "@jane", c.Telegram)
	assert.Equal(t, "interview", c.Status)
	assert.Equal(t, "2026-08-15", c.NextStep)
	assert.NotEmpty(t, c.CreatedAt)
}

func TestAdd_JSONFormat(t *testing.T) {
	dbPath := testDB(t)

	out, _, err := execute(t, "",
		"--db", dbPath, "--format", "json", "add",
		"--company", "Acme",
		"--full-name", "Jane Doe",
	)
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, data["id"])
}

func TestAdd_DefaultStatus(t *testing.T) {
	dbPath := testDB(t)

	_, _, err := execute(t, "",
		"--db", dbPath, "add",
		"--company", "Acme",
		"--full-name", "Jane Doe",
	)
	require.NoError(t, err)

	c := getContact(t, dbPath, 1)
	assert.Equal(t, contact.DefaultStatus, c.Status)
}

func TestAdd_MissingCompany(t *testing.T) {
	dbPath := testDB(t)

	out, _, err := execute(t, "",
		"--db", dbPath, "add",
		"--full-name", "Jane Doe",
	)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [validation]")
	assert.Contains(t, out, "company is required")
}

func TestAdd_MissingFullName(t *testing.T) {
	dbPath := testDB(t)

	out, _, err := execute(t, "",
		"--db", dbPath, "add",
		"--company", "Acme",
	)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "full_name is required")
}

func TestAdd_InvalidStatus(t *testing.T) {
	dbPath := testDB(t)

	out, _, err := execute(t, "",
		"--db", dbPath, "add",
		"--company", "Acme",
		"--full-name", "Jane Doe",
		"--status", "ghosted",
	)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `invalid status "ghosted"`)
}

func TestAdd_InvalidDate(t *testing.T) {
	dbPath := testDB(t)

	out, _, err := execute(t, "",
		"--db", dbPath, "add",
		"--company", "Acme",
		"--full-name", "Jane Doe",
		"--next-step", "next tuesday",
	)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "invalid --next-step")
}

func TestAdd_JSONValidationError(t *testing.T) {
	dbPath := testDB(t)

	out, _, err := execute(t, "",
		"--db", dbPath, "--format", "json", "add",
		"--full-name", "Jane Doe",
	)
	require.Error(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation", resp.Error.Code)
}
