package store

import (
	"context"
	"reflect"
	"testing"

	"recruitcrm/internal/contact"
)

func TestGet_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	in := contact.Contact{
		Company:     "Acme",
		FullName:    "Jane Doe",
		Telegram:    "@jane_hr",
		Phone:       "+1 555 0100",
		Position:    "Technical Recruiter",
		Email:       "jane@acme.test",
		Comments:    "met at the conference",
		ResumePath:  "/home/user/resume.pdf",
		Status:      contact.StatusAwaitingReply,
		LastContact: "2026-01-10",
		NextStep:    "2026-02-01",
	}

	id, err := s.Insert(ctx, in)
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	// Equal except the storage-assigned fields
	want := in
	want.ID = got.ID
	want.CreatedAt = got.CreatedAt
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
	if got.ID != id {
		t.Errorf("id = %d, want %d", got.ID, id)
	}
	if got.CreatedAt == "" {
		t.Error("created_at empty after round trip")
	}
}

func TestGet_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Get(context.Background(), 404)
	if err == nil {
		t.Fatal("expected NotFoundError, got nil")
	}
	if !contact.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestList_Empty(t *testing.T) {
	s := createTestStore(t)

	got, err := s.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if got == nil {
		t.Error("List() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("List() returned %d contacts, want 0", len(got))
	}
}

func TestList_NextStepOrdering(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Contacts with a next_step sort first, ascending by date; the one
	// without a next_step goes last.
	insertWithNextStep := func(name, nextStep string) {
		c := createTestContact("Acme", name)
		c.NextStep = nextStep
		mustInsert(t, s, c)
	}
	insertWithNextStep("No Step", "")
	insertWithNextStep("Later", "2024-01-01")
	insertWithNextStep("Sooner", "2023-05-05")

	got, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List() returned %d contacts, want 3", len(got))
	}

	wantOrder := []string{"Sooner", "Later", "No Step"}
	for i, want := range wantOrder {
		if got[i].FullName != want {
			t.Errorf("position %d = %q, want %q", i, got[i].FullName, want)
		}
	}
}

func TestList_TiesBrokenByCreatedAtDesc(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	older := mustInsert(t, s, createTestContact("Acme", "Older"))
	newer := mustInsert(t, s, createTestContact("Acme", "Newer"))
	setCreatedAt(t, s, older, "2026-01-01 08:00:00")
	setCreatedAt(t, s, newer, "2026-01-02 08:00:00")

	got, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d contacts, want 2", len(got))
	}

	if got[0].FullName != "Newer" || got[1].FullName != "Older" {
		t.Errorf("order = [%q, %q], want most recent first", got[0].FullName, got[1].FullName)
	}
}

func TestList_TiesBrokenByIDDesc(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Identical next_step and created_at leave id as the only tiebreaker.
	first := mustInsert(t, s, createTestContact("Acme", "First"))
	second := mustInsert(t, s, createTestContact("Acme", "Second"))
	setCreatedAt(t, s, first, "2026-01-01 08:00:00")
	setCreatedAt(t, s, second, "2026-01-01 08:00:00")

	got, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d contacts, want 2", len(got))
	}

	if got[0].ID != second || got[1].ID != first {
		t.Errorf("order = [%d, %d], want higher id first", got[0].ID, got[1].ID)
	}
}

func TestList_FilterByCompany(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustInsert(t, s, createTestContact("Acme", "Jane Doe"))
	mustInsert(t, s, createTestContact("Beta", "John Roe"))

	got, err := s.List(ctx, Filter{Company: "Acme"})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d contacts, want 1", len(got))
	}
	if got[0].Company != "Acme" {
		t.Errorf("company = %q, want %q", got[0].Company, "Acme")
	}
}

func TestList_FilterByStatus(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	c1 := createTestContact("Acme", "Jane Doe")
	c1.Status = contact.StatusOffer
	mustInsert(t, s, c1)

	c2 := createTestContact("Beta", "John Roe")
	c2.Status = contact.StatusRejected
	mustInsert(t, s, c2)

	got, err := s.List(ctx, Filter{Status: contact.StatusOffer})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d contacts, want 1", len(got))
	}
	if got[0].FullName != "Jane Doe" {
		t.Errorf("full_name = %q, want %q", got[0].FullName, "Jane Doe")
	}
}

func TestList_FilterByCompanyAndStatus(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	c1 := createTestContact("Acme", "Match")
	c1.Status = contact.StatusOffer
	mustInsert(t, s, c1)

	c2 := createTestContact("Acme", "Wrong Status")
	c2.Status = contact.StatusRejected
	mustInsert(t, s, c2)

	c3 := createTestContact("Beta", "Wrong Company")
	c3.Status = contact.StatusOffer
	mustInsert(t, s, c3)

	got, err := s.List(ctx, Filter{Company: "Acme", Status: contact.StatusOffer})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d contacts, want 1", len(got))
	}
	if got[0].FullName != "Match" {
		t.Errorf("full_name = %q, want %q", got[0].FullName, "Match")
	}
}

func TestList_FilterAllSentinel(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustInsert(t, s, createTestContact("Acme", "Jane Doe"))
	mustInsert(t, s, createTestContact("Beta", "John Roe"))

	got, err := s.List(ctx, Filter{Company: FilterAll, Status: FilterAll})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("List() with sentinel filters returned %d contacts, want 2", len(got))
	}
}

func TestList_FilterNoMatches(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustInsert(t, s, createTestContact("Acme", "Jane Doe"))

	got, err := s.List(ctx, Filter{Company: "Nowhere"})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if got == nil {
		t.Error("List() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("List() returned %d contacts, want 0", len(got))
	}
}

func TestList_DefaultStatusFilterMatchesLegacyRows(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Simulate rows from before the status column existed.
	nullID := mustInsert(t, s, createTestContact("OldCo", "Null Status"))
	emptyID := mustInsert(t, s, createTestContact("OldCo", "Empty Status"))
	if _, err := s.db.Exec(`UPDATE contacts SET status = NULL WHERE id = ?`, nullID); err != nil {
		t.Fatalf("null out status: %v", err)
	}
	if _, err := s.db.Exec(`UPDATE contacts SET status = '' WHERE id = ?`, emptyID); err != nil {
		t.Fatalf("blank out status: %v", err)
	}

	other := createTestContact("NewCo", "Interviewing")
	other.Status = contact.StatusInterview
	mustInsert(t, s, other)

	got, err := s.List(ctx, Filter{Status: contact.DefaultStatus})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d contacts, want the 2 legacy rows", len(got))
	}
	for _, c := range got {
		if c.Status != contact.DefaultStatus {
			t.Errorf("legacy row status = %q, want default %q", c.Status, contact.DefaultStatus)
		}
	}
}

func TestCompanies_DistinctSortedByBinaryCollation(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Case-sensitive dedup: "Acme" and "acme" stay distinct, uppercase
	// sorts first under BINARY collation.
	mustInsert(t, s, createTestContact("Acme", "A"))
	mustInsert(t, s, createTestContact("acme", "B"))
	mustInsert(t, s, createTestContact("Beta", "C"))

	got, err := s.Companies(ctx)
	if err != nil {
		t.Fatalf("Companies() failed: %v", err)
	}

	want := []string{"Acme", "Beta", "acme"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Companies() = %v, want %v", got, want)
	}
}

func TestCompanies_DeduplicatesExactValues(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustInsert(t, s, createTestContact("Acme", "Jane Doe"))
	mustInsert(t, s, createTestContact("Acme", "John Roe"))

	got, err := s.Companies(ctx)
	if err != nil {
		t.Fatalf("Companies() failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Companies() = %v, want one entry", got)
	}
}

func TestCompanies_Empty(t *testing.T) {
	s := createTestStore(t)

	got, err := s.Companies(context.Background())
	if err != nil {
		t.Fatalf("Companies() failed: %v", err)
	}
	if got == nil {
		t.Error("Companies() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Companies() returned %d values, want 0", len(got))
	}
}
