package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"recruitcrm/internal/contact"
	"recruitcrm/internal/store"
)

// testDB pins every config source to the test's sandbox and returns a
// database path for --db. Commands log at error level to keep test
// output quiet.
func testDB(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
	for _, key := range []string{"RECRUITCRM_DB", "RECRUITCRM_LOG_FORMAT", "RECRUITCRM_LOG_FILE"} {
		t.Setenv(key, "")
	}
	t.Setenv("RECRUITCRM_LOG_LEVEL", "error")
	return filepath.Join(t.TempDir(), "contacts.db")
}

// chdir switches the working directory for the duration of the test,
// restoring the old one during cleanup. testing.T.Chdir needs Go 1.24,
// newer than this module's toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			// Fatal is not safe inside a cleanup function.
			panic("restore working directory: " + err.Error())
		}
	})
}

// execute runs the root command and returns stdout, stderr and the
// execution error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// seedContacts inserts contacts directly through the store and returns
// their assigned ids.
func seedContacts(t *testing.T, dbPath string, contacts ...contact.Contact) []int64 {
	t.Helper()
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, st.Close()) }()

	ids := make([]int64, 0, len(contacts))
	for _, c := range contacts {
		id, err := st.Insert(context.Background(), c)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// getContact reads one record back directly through the store.
func getContact(t *testing.T, dbPath string, id int64) contact.Contact {
	t.Helper()
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, st.Close()) }()

	c, err := st.Get(context.Background(), id)
	require.NoError(t, err)
	return c
}

// decodeResponse unmarshals a JSON-format command response.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}
