package store

import (
	"context"
	"path/filepath"
	"testing"

	"straysense/pkg/triage"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "records.json"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := Record{
		AnimalName:   "Bella",
		Species:      "dog",
		Urgency:      triage.UrgencyHigh,
		UrgencyScore: 6,
		ConcernFlags: []triage.Concern{triage.ConcernTrauma},
		Actions:      []string{"Transport the animal to an emergency veterinary clinic immediately."},
	}
	id, err := s.Save(ctx, &rec)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("Save returned empty id")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Save must assign CreatedAt")
	}

	// A fresh store on the same path must see the record.
	s2, err := NewFileStore(s.path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s2.List(ctx, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("List returned %d records, want 1", len(got))
	}
	if got[0].ID != id || got[0].AnimalName != "Bella" || got[0].Urgency != triage.UrgencyHigh {
		t.Errorf("reloaded record = %+v", got[0])
	}
}

func TestFileStoreListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Save(ctx, &Record{AnimalName: name, Urgency: triage.UrgencyLow}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.List(ctx, "", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d records, want 2", len(got))
	}
	if got[0].AnimalName != "third" || got[1].AnimalName != "second" {
		t.Errorf("order = [%s, %s], want newest first", got[0].AnimalName, got[1].AnimalName)
	}
}

func TestFileStoreListFiltersByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, uid := range []string{"alice", "bob", "alice"} {
		if _, err := s.Save(ctx, &Record{UserID: uid, Urgency: triage.UrgencyLow}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.List(ctx, "alice", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d records for alice, want 2", len(got))
	}
	for _, r := range got {
		if r.UserID != "alice" {
			t.Errorf("record for user %q leaked into filtered list", r.UserID)
		}
	}
}

func TestRecordPrepareKeepsExplicitID(t *testing.T) {
	rec := Record{ID: "fixed-id"}
	rec.prepare()
	if rec.ID != "fixed-id" {
		t.Errorf("prepare overwrote id: %q", rec.ID)
	}
}
