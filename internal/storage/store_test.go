package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/digimosa/exposure-scan/internal/models"
)

func sampleResult(username string) models.AnalysisResult {
	return models.AnalysisResult{
		Platform:        "instagram",
		Username:        username,
		ProfileURL:      "https://instagram.com/" + username,
		AvatarURL:       "https://example.com/avatar.png",
		RiskScore:       55,
		RiskLevel:       models.RiskHigh,
		Stats:           models.ProfileStats{Posts: 10, Followers: 200, Following: 50},
		Leaks:           []string{"1 phone number(s) exposed"},
		Findings:        models.Findings{Phones: []string{"0901234567"}, Emails: []string{"a@b.com"}, Faces: 2},
		Recommendations: []string{"Hide email addresses from public view."},
	}
}

// testStoreContract exercises the Store behavior every backend must satisfy.
func testStoreContract(t *testing.T, s Store) {
	t.Helper()

	// Empty store
	scans, err := s.List()
	if err != nil {
		t.Fatalf("List() on empty store: %v", err)
	}
	if len(scans) != 0 {
		t.Fatalf("List() on empty store returned %d scans", len(scans))
	}
	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	// Create then fetch back
	created, err := s.Create(sampleResult("jane_doe"))
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}
	if created.ID == "" {
		t.Error("Create() assigned no id")
	}
	if created.ScannedAt.IsZero() {
		t.Error("Create() assigned no timestamp")
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get(%s): %v", created.ID, err)
	}
	if got.Username != "jane_doe" || got.RiskScore != 55 || got.RiskLevel != models.RiskHigh {
		t.Errorf("Get() returned mismatched record: %+v", got)
	}
	if len(got.Findings.Phones) != 1 || got.Findings.Phones[0] != "0901234567" {
		t.Errorf("Get() lost findings: %+v", got.Findings)
	}
	if got.Stats != created.Stats {
		t.Errorf("Get() stats = %+v, want %+v", got.Stats, created.Stats)
	}

	// Newest first
	second, err := s.Create(sampleResult("john_roe"))
	if err != nil {
		t.Fatalf("Create() second: %v", err)
	}
	scans, err = s.List()
	if err != nil {
		t.Fatalf("List(): %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("List() returned %d scans, want 2", len(scans))
	}
	if scans[0].ID != second.ID || scans[1].ID != created.ID {
		t.Errorf("List() not newest-first: %s, %s", scans[0].ID, scans[1].ID)
	}

	// Clear wipes everything
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear(): %v", err)
	}
	scans, err = s.List()
	if err != nil {
		t.Fatalf("List() after clear: %v", err)
	}
	if len(scans) != 0 {
		t.Errorf("List() after clear returned %d scans", len(scans))
	}
	if _, err := s.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after clear error = %v, want ErrNotFound", err)
	}
}

// testStoreEviction verifies the history cap drops oldest entries.
func testStoreEviction(t *testing.T, s Store, limit int) {
	t.Helper()

	var first, last *models.Scan
	for i := 0; i <= limit; i++ {
		scan, err := s.Create(sampleResult(fmt.Sprintf("user_%03d", i)))
		if err != nil {
			t.Fatalf("Create() #%d: %v", i, err)
		}
		if i == 0 {
			first = scan
		}
		last = scan
	}

	scans, err := s.List()
	if err != nil {
		t.Fatalf("List(): %v", err)
	}
	if len(scans) != limit {
		t.Fatalf("store retained %d scans, want %d", len(scans), limit)
	}
	if scans[0].ID != last.ID {
		t.Errorf("newest scan missing from head of list")
	}
	if _, err := s.Get(first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("oldest scan still present after eviction, Get error = %v", err)
	}
	if _, err := s.Get(last.ID); err != nil {
		t.Errorf("newest scan absent after eviction: %v", err)
	}
}

func TestFileStoreContract(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "history.json"), 0)
	if err != nil {
		t.Fatalf("NewFileStore(): %v", err)
	}
	testStoreContract(t, s)
}

func TestFileStoreEviction(t *testing.T) {
	const limit = 100
	s, err := NewFileStore(filepath.Join(t.TempDir(), "history.json"), limit)
	if err != nil {
		t.Fatalf("NewFileStore(): %v", err)
	}
	testStoreEviction(t, s, limit)
}

func TestFileStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	s, err := NewFileStore(path, 0)
	if err != nil {
		t.Fatalf("NewFileStore(): %v", err)
	}
	created, err := s.Create(sampleResult("jane_doe"))
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	// A fresh store over the same file sees the record
	reopened, err := NewFileStore(path, 0)
	if err != nil {
		t.Fatalf("NewFileStore() reopen: %v", err)
	}
	got, err := reopened.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() after reopen: %v", err)
	}
	if got.Username != "jane_doe" {
		t.Errorf("reopened record username = %q", got.Username)
	}
}

func TestGormStoreContract(t *testing.T) {
	s, err := NewGormStore(filepath.Join(t.TempDir(), "scans.db"), 0)
	if err != nil {
		t.Fatalf("NewGormStore(): %v", err)
	}
	testStoreContract(t, s)
}

func TestGormStoreEviction(t *testing.T) {
	const limit = 20
	s, err := NewGormStore(filepath.Join(t.TempDir(), "scans.db"), limit)
	if err != nil {
		t.Fatalf("NewGormStore(): %v", err)
	}
	testStoreEviction(t, s, limit)
}
