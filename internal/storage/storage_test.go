package storage_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rnakano/pomostudy/internal/models"
	"github.com/rnakano/pomostudy/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Opening an existing file re-runs migrations without error.
	store, err = storage.Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	store.Close()
}

func TestInsertAndFindEntry(t *testing.T) {
	store := openTestStore(t)

	entry := &models.Entry{
		Username:     "alice",
		Subject:      "Math",
		Date:         "2026-08-29",
		DayOfWeek:    "Saturday",
		StudyMinutes: 25,
	}
	if err := store.InsertEntry(entry); err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("InsertEntry did not assign an id")
	}

	found, err := store.FindEntry("alice", "Math", "2026-08-29")
	if err != nil {
		t.Fatalf("FindEntry: %v", err)
	}
	if found == nil {
		t.Fatal("FindEntry returned nil for an existing entry")
	}
	if found.StudyMinutes != 25 {
		t.Errorf("StudyMinutes = %d, want 25", found.StudyMinutes)
	}

	// Different subject, user or date finds nothing.
	for _, key := range [][3]string{
		{"alice", "English", "2026-08-29"},
		{"bob", "Math", "2026-08-29"},
		{"alice", "Math", "2026-08-30"},
	} {
		found, err := store.FindEntry(key[0], key[1], key[2])
		if err != nil {
			t.Fatalf("FindEntry(%v): %v", key, err)
		}
		if found != nil {
			t.Errorf("FindEntry(%v) = %+v, want nil", key, found)
		}
	}
}

func TestUpdateEntryMinutes(t *testing.T) {
	store := openTestStore(t)

	entry := &models.Entry{Subject: "Math", Date: "2026-08-29", DayOfWeek: "Saturday", StudyMinutes: 10}
	if err := store.InsertEntry(entry); err != nil {
		t.Fatal(err)
	}

	if err := store.UpdateEntryMinutes(entry.ID, 40); err != nil {
		t.Fatalf("UpdateEntryMinutes: %v", err)
	}

	found, err := store.FindEntry("", "Math", "2026-08-29")
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.StudyMinutes != 40 {
		t.Errorf("after update entry = %+v, want 40 minutes", found)
	}
}

func TestListEntriesOrderAndScope(t *testing.T) {
	store := openTestStore(t)

	seed := []models.Entry{
		{Username: "alice", Subject: "Math", Date: "2026-08-27", DayOfWeek: "Thursday", StudyMinutes: 10},
		{Username: "alice", Subject: "English", Date: "2026-08-29", DayOfWeek: "Saturday", StudyMinutes: 15},
		{Username: "alice", Subject: "Math", Date: "2026-08-28", DayOfWeek: "Friday", StudyMinutes: 20},
		{Username: "bob", Subject: "History", Date: "2026-08-29", DayOfWeek: "Saturday", StudyMinutes: 30},
	}
	for i := range seed {
		if err := store.InsertEntry(&seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.ListEntries("alice")
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ListEntries returned %d entries, want 3", len(entries))
	}
	wantDates := []string{"2026-08-29", "2026-08-28", "2026-08-27"}
	for i, want := range wantDates {
		if entries[i].Date != want {
			t.Errorf("entries[%d].Date = %s, want %s", i, entries[i].Date, want)
		}
	}

	// Bob's row never leaks into Alice's ledger.
	for _, e := range entries {
		if e.Username != "alice" {
			t.Errorf("found foreign entry %+v in alice's ledger", e)
		}
	}
}

func TestSumByDate(t *testing.T) {
	store := openTestStore(t)

	seed := []models.Entry{
		{Subject: "Math", Date: "2026-08-29", DayOfWeek: "Saturday", StudyMinutes: 10},
		{Subject: "English", Date: "2026-08-29", DayOfWeek: "Saturday", StudyMinutes: 15},
		{Subject: "Math", Date: "2026-08-28", DayOfWeek: "Friday", StudyMinutes: 30},
	}
	for i := range seed {
		if err := store.InsertEntry(&seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	totals, err := store.SumByDate("")
	if err != nil {
		t.Fatalf("SumByDate: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("SumByDate returned %d rows, want 2", len(totals))
	}
	if totals[0].Date != "2026-08-29" || totals[0].TotalMinutes != 25 {
		t.Errorf("totals[0] = %+v, want 2026-08-29 / 25", totals[0])
	}
	if totals[1].Date != "2026-08-28" || totals[1].TotalMinutes != 30 {
		t.Errorf("totals[1] = %+v, want 2026-08-28 / 30", totals[1])
	}
}

func TestInsertAccountDuplicate(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.InsertAccount("alice", "hash-1"); err != nil {
		t.Fatalf("InsertAccount: %v", err)
	}

	_, err := store.InsertAccount("alice", "hash-2")
	if !errors.Is(err, storage.ErrDuplicateAccount) {
		t.Errorf("duplicate InsertAccount error = %v, want ErrDuplicateAccount", err)
	}

	account, err := store.FindAccount("alice")
	if err != nil {
		t.Fatal(err)
	}
	if account == nil || account.PasswordHash != "hash-1" {
		t.Errorf("account = %+v, want original hash kept", account)
	}
}

func TestFindAccountMissing(t *testing.T) {
	store := openTestStore(t)

	account, err := store.FindAccount("nobody")
	if err != nil {
		t.Fatalf("FindAccount: %v", err)
	}
	if account != nil {
		t.Errorf("FindAccount = %+v, want nil", account)
	}
}
