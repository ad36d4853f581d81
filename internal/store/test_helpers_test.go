package store

import (
	"context"
	"path/filepath"
	"testing"

	"recruitcrm/internal/contact"
)

// createTestStore opens a fresh store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestContact builds a contact with the required fields set.
func createTestContact(company, fullName string) contact.Contact {
	return contact.Contact{
		Company:  company,
		FullName: fullName,
	}
}

// mustInsert inserts a contact and fails the test on any error.
func mustInsert(t *testing.T, s *Store, c contact.Contact) int64 {
	t.Helper()
	id, err := s.Insert(context.Background(), c)
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	return id
}

// setCreatedAt overwrites a row's created_at so ordering tests can pin
// distinct creation times without sleeping through the one-second
// resolution of CURRENT_TIMESTAMP.
func setCreatedAt(t *testing.T, s *Store, id int64, createdAt string) {
	t.Helper()
	if _, err := s.db.Exec(`UPDATE contacts SET created_at = ? WHERE id = ?`, createdAt, id); err != nil {
		t.Fatalf("set created_at: %v", err)
	}
}
