package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"castlog/internal/models"
)

func testEntry(id, text, day string) models.Entry {
	return models.Entry{
		ID:        id,
		Text:      text,
		Date:      day,
		CreatedAt: time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC),
	}
}

func TestJSONStoreInitAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "castlog.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Init() did not create %s: %v", path, err)
	}

	// Double init is an error, the file already exists.
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("second Init() should fail")
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entries, err := reopened.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("fresh store has %d entries, want 0", len(entries))
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "nope", "castlog.json"))

	if err := store.Load(); err != nil {
		t.Fatalf("Load() on missing file error = %v, want nil", err)
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.Timezone != DefaultSettings().Timezone {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestJSONStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "castlog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() on corrupt file error = %v, want nil", err)
	}
	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from corrupt file, want 0", len(entries))
	}
}

func TestJSONStoreAddEntryOrdering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "castlog.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	for _, e := range []models.Entry{
		testEntry("a", "first", "2024-01-08"),
		testEntry("b", "second", "2024-01-09"),
		testEntry("c", "third", "2024-01-09"),
	} {
		if err := store.AddEntry(e); err != nil {
			t.Fatalf("AddEntry(%s) error = %v", e.ID, err)
		}
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries() error = %v", err)
	}
	wantOrder := []string{"c", "b", "a"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantOrder))
	}
	for i, id := range wantOrder {
		if entries[i].ID != id {
			t.Errorf("entries[%d].ID = %s, want %s", i, entries[i].ID, id)
		}
	}

	// Ordering survives a reload.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	again, err := reopened.GetEntries()
	if err != nil {
		t.Fatal(err)
	}
	for i, id := range wantOrder {
		if again[i].ID != id {
			t.Errorf("after reload entries[%d].ID = %s, want %s", i, again[i].ID, id)
		}
	}
}

func TestJSONStoreGetEntriesForDay(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "castlog.json"))
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	store.AddEntry(testEntry("a", "one", "2024-01-09"))
	store.AddEntry(testEntry("b", "two", "2024-01-10"))
	store.AddEntry(testEntry("c", "three", "2024-01-10"))

	entries, err := store.GetEntriesForDay("2024-01-10")
	if err != nil {
		t.Fatalf("GetEntriesForDay() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries for day, want 2", len(entries))
	}
	if entries[0].ID != "c" || entries[1].ID != "b" {
		t.Errorf("day entries = [%s %s], want [c b]", entries[0].ID, entries[1].ID)
	}

	none, err := store.GetEntriesForDay("2020-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("got %d entries for inactive day, want 0", len(none))
	}
}

func TestJSONStoreSettingsRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "castlog.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	want := models.Settings{
		Timezone:       "America/New_York",
		FID:            1337,
		DefaultChannel: "productivity",
		PublishEnabled: true,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestJSONStoreNotLoaded(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "castlog.json"))

	if _, err := store.GetEntries(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("GetEntries() error = %v, want ErrNotLoaded", err)
	}
	if err := store.AddEntry(testEntry("a", "x", "2024-01-10")); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("AddEntry() error = %v, want ErrNotLoaded", err)
	}
	if _, err := store.GetSettings(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("GetSettings() error = %v, want ErrNotLoaded", err)
	}
}

func TestJSONStoreGetEntriesReturnsCopy(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "castlog.json"))
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	store.AddEntry(testEntry("a", "original", "2024-01-10"))

	entries, _ := store.GetEntries()
	entries[0].Text = "mutated"

	again, _ := store.GetEntries()
	if again[0].Text != "original" {
		t.Error("mutating a returned slice leaked into the store")
	}
}
